package kernel

import "fmt"

// Location represents a point on the integer-valued coordinate grid used by
// the dispatch domain. Latitude and longitude are deliberately coarse-grained
// integers rather than floating-point degrees; the zero value (0,0) is a
// legitimate position.
//
// Location is an immutable value object and is safe to copy and compare.
type Location struct {
	lat int
	lng int
}

// NewLocation creates a Location from integer latitude and longitude.
func NewLocation(lat, lng int) Location {
	return Location{lat: lat, lng: lng}
}

// Lat returns the integer latitude of the location.
func (l Location) Lat() int {
	return l.lat
}

// Lng returns the integer longitude of the location.
func (l Location) Lng() int {
	return l.lng
}

// IsEqual reports whether two locations have the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l == other
}

// Distance calculates the Manhattan distance between two locations:
// |lat1-lat2| + |lng1-lng2|. Lower means closer; the result is never
// negative. Manhattan distance keeps ranking deterministic and free of
// floating-point arithmetic.
//
// Example:
//
//	a := kernel.NewLocation(1, 1)
//	b := kernel.NewLocation(4, 5)
//	a.Distance(b) // 7
func (l Location) Distance(other Location) int {
	return abs(l.lat-other.lat) + abs(l.lng-other.lng)
}

// String returns a human-readable representation in the form "Location(lat,lng)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.lat, l.lng)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
