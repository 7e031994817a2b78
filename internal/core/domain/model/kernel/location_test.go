package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dispatch/internal/core/domain/model/kernel"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name string
		lat  int
		lng  int
	}{
		{name: "positive coordinates", lat: 15, lng: 25},
		{name: "negative coordinates", lat: -40, lng: -73},
		{name: "zero value is a legitimate position", lat: 0, lng: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := kernel.NewLocation(tt.lat, tt.lng)

			assert.Equal(t, tt.lat, loc.Lat())
			assert.Equal(t, tt.lng, loc.Lng())
		})
	}
}

func TestLocation_Distance(t *testing.T) {
	tests := []struct {
		name string
		a    kernel.Location
		b    kernel.Location
		want int
	}{
		{
			name: "manhattan distance",
			a:    kernel.NewLocation(1, 1),
			b:    kernel.NewLocation(4, 5),
			want: 7,
		},
		{
			name: "same point",
			a:    kernel.NewLocation(10, 10),
			b:    kernel.NewLocation(10, 10),
			want: 0,
		},
		{
			name: "negative coordinates",
			a:    kernel.NewLocation(-3, 2),
			b:    kernel.NewLocation(1, -2),
			want: 8,
		},
		{
			name: "axis-aligned",
			a:    kernel.NewLocation(5, 63),
			b:    kernel.NewLocation(47, 63),
			want: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Distance(tt.b))
			// Distance is symmetric.
			assert.Equal(t, tt.want, tt.b.Distance(tt.a))
		})
	}
}

func TestLocation_IsEqual(t *testing.T) {
	a := kernel.NewLocation(5, 63)
	b := kernel.NewLocation(5, 63)
	c := kernel.NewLocation(15, 25)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "Location(47,-12)", kernel.NewLocation(47, -12).String())
}
