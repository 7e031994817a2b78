// Package kernel provides core domain primitives for the dispatch system.
// It implements fundamental building blocks that are shared across the
// domain model.
//
// The package includes:
//   - Location: A value object for integer latitude/longitude pairs with
//     Manhattan distance calculation
//   - TimeWindow: A value object for inclusive time intervals, used to derive
//     the commitment window of an order
//
// These primitives are immutable and safe for concurrent use. Distance is
// deliberately Manhattan over integer coordinates: the domain uses
// coarse-grained geocoding, and switching to geodesic distance would change
// matching outcomes.
package kernel
