package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone rules for LoadLocation on hosts without a zoneinfo database

	"github.com/ringsaturn/tzf"
)

// Zone is an IANA timezone and its UTC offset at a given instant
type Zone struct {
	Name          string `json:"name"`
	OffsetSeconds int    `json:"offsetSeconds"`
}

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	GetZone(latitude, longitude float64, at time.Time) (Zone, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the shared timezone service.
// The finder holds the polygon data in memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Europe/London"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

// GetZone returns the timezone for the coordinates with its offset at the given instant
func (s *service) GetZone(latitude, longitude float64, at time.Time) (Zone, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return Zone{}, err
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	_, offset := at.In(loc).Zone()
	return Zone{Name: name, OffsetSeconds: offset}, nil
}
