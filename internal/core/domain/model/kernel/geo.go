package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// Longitude and latitude bounds in decimal degrees.
const (
	GeoMinLon float64 = -180
	GeoMaxLon float64 = 180
	GeoMinLat float64 = -90
	GeoMaxLat float64 = 90
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint or ParseGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or ParseGeoPoint constructors")

// ErrGeoPointFormat is returned by ParseGeoPoint when the textual form is not
// two space-separated numbers.
var ErrGeoPointFormat = errs.NewValueIsInvalidError("geo point must be \"<lon> <lat>\"")

// GeoPoint is an immutable (longitude, latitude) pair used for user addresses,
// rider positions, and delivery pickup/dropoff locations. Coordinates must be
// finite and within the usual decimal-degree bounds; there is no spatial math
// here, points are only stored and returned.
//
// The zero value is invalid and will fail validation - use the constructors.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from discrete longitude/latitude values.
// Non-finite values (NaN, ±Inf) and values outside the decimal-degree bounds
// are rejected.
func NewGeoPoint(lon float64, lat float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// ParseGeoPoint parses the wire form "<lon> <lat>" (space separated).
// Callers that treat a missing point as acceptable should drop the point on
// error rather than failing the request; endpoints that require coordinates
// surface the error as invalid input.
func ParseGeoPoint(s string) (GeoPoint, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return GeoPoint{}, ErrGeoPointFormat
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}

	return NewGeoPoint(lon, lat)
}

// Validate checks if the GeoPoint was properly constructed using a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// String renders the point back into the wire form "<lon> <lat>".
func (p GeoPoint) String() string {
	return fmt.Sprintf("%s %s",
		strconv.FormatFloat(p.lon, 'f', -1, 64),
		strconv.FormatFloat(p.lat, 'f', -1, 64))
}

// IsEqual compares two points for exact coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lon == other.lon && p.lat == other.lat, nil
}

// setLon sets the longitude with validation.
// Pointer receiver on a private setter enables self-encapsulated validation
// during construction, mirroring the other kernel value objects.
func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return errs.NewValueIsInvalidError("lon")
	}
	if lon < GeoMinLon || lon > GeoMaxLon {
		return errs.NewValueIsOutOfRangeError("lon", lon, GeoMinLon, GeoMaxLon)
	}

	p.lon = lon
	return nil
}

// setLat sets the latitude with validation.
func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidError("lat")
	}
	if lat < GeoMinLat || lat > GeoMaxLat {
		return errs.NewValueIsOutOfRangeError("lat", lat, GeoMinLat, GeoMaxLat)
	}

	p.lat = lat
	return nil
}
