package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrGeolocationIsNotConstructed is returned when validating a zero-value
// Geolocation. Geolocations must be created via NewGeolocation.
var ErrGeolocationIsNotConstructed = errs.NewValueIsRequiredError("geolocation must be created via NewGeolocation")

// Geolocation is an immutable WGS84 coordinate pair reported by driver
// devices and rendered on the live map. A driver carries a Geolocation only
// while active; the value itself is always within valid bounds.
//
// Example:
//
//	loc, err := kernel.NewGeolocation(12.9716, 77.5946)
//	if err != nil {
//	    // coordinate out of range
//	}
type Geolocation struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeolocation creates a Geolocation with validated coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeolocation(latitude, longitude float64) (Geolocation, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return Geolocation{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return Geolocation{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return Geolocation{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (g Geolocation) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees.
func (g Geolocation) Longitude() float64 {
	return g.longitude
}

// IsEqual reports whether two geolocations have identical coordinates.
func (g Geolocation) IsEqual(other Geolocation) bool {
	return g.latitude == other.latitude && g.longitude == other.longitude
}

// String returns a compact "Geolocation(lat,lon)" representation.
func (g Geolocation) String() string {
	return fmt.Sprintf("Geolocation(%g,%g)", g.latitude, g.longitude)
}

// Validate returns ErrGeolocationIsNotConstructed for zero-value instances.
func (g Geolocation) Validate() error {
	return g.guard.Validate(ErrGeolocationIsNotConstructed)
}
