// Package services provides domain services that operate across multiple
// domain entities in the dispatch system. It implements business logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DriverLocator: the two-phase nearest-driver search used when a pickup
//     request arrives without a pre-assigned driver
//
// Domain services are pure: they rank in-memory candidates and never touch
// storage. The application layer fetches candidate sets and feeds them in.
package services
