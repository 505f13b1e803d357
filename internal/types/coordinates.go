package types

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether both components are inside their geographic range.
// NaN fails both comparisons and is rejected.
func (c Coords) Validate() error {
	if !(c.Latitude >= -90 && c.Latitude <= 90) {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, c.Latitude)
	}
	if !(c.Longitude >= -180 && c.Longitude <= 180) {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

// String returns "lat,lon" with the shortest exact decimal form of each value
func (c Coords) String() string {
	return FormatNumber(c.Latitude) + "," + FormatNumber(c.Longitude)
}

// FormatNumber prints a float without trailing zeros, 15 -> "15", 5.5 -> "5.5"
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
