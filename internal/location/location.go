package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"geo-weather/internal/config"
	"geo-weather/internal/types"
)

var (
	// ErrCapabilityMissing means no location source is configured or reachable.
	// It is returned before any position request is attempted.
	ErrCapabilityMissing = errors.New("geolocation is not supported by this host")

	// ErrLocationUnavailable matches every *UnavailableError
	ErrLocationUnavailable = errors.New("location unavailable")

	ErrInvalidLatitude  = types.ErrInvalidLatitude
	ErrInvalidLongitude = types.ErrInvalidLongitude
)

// UnavailableError reports a failed position request and the reason the source gave
type UnavailableError struct {
	Source string
	Reason error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("error fetching location: %v", e.Reason)
}

func (e *UnavailableError) Unwrap() error {
	return e.Reason
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrLocationUnavailable
}

// Source is a device or feed that knows the current position
type Source interface {
	Name() string
	// Available reports whether the source can be asked at all
	Available() bool
	CurrentPosition(ctx context.Context) (types.Coords, error)
}

// Service acquires and validates coordinates
type Service interface {
	// Acquire asks the configured source for the current position exactly once
	Acquire(ctx context.Context) (types.Coords, error)
	// Validate checks caller supplied coordinates
	Validate(latitude, longitude float64) (types.Coords, error)
}

type locationService struct {
	source Source
	logger *slog.Logger
}

// NewLocationService creates a location service backed by the given source.
// A nil source is allowed and makes every Acquire fail with ErrCapabilityMissing.
func NewLocationService(source Source, logger *slog.Logger) Service {
	return &locationService{
		source: source,
		logger: logger.With("component", "location-service"),
	}
}

// NewSourceFromConfig builds the source selected by location.source.
// The "none" source yields a nil Source.
func NewSourceFromConfig(cfg config.LocationConfig, logger *slog.Logger) (Source, error) {
	switch strings.ToLower(cfg.Source) {
	case "", config.SourceNone:
		return nil, nil
	case config.SourceStatic:
		return NewStaticSource(types.NewCoords(cfg.Static.Latitude, cfg.Static.Longitude)), nil
	case config.SourceGPS:
		return NewGPSSource(cfg.GPS, logger), nil
	case config.SourceMQTT:
		return NewMQTTSource(cfg.MQTT, logger), nil
	default:
		return nil, fmt.Errorf("unknown location source %q", cfg.Source)
	}
}

func (s *locationService) Acquire(ctx context.Context) (types.Coords, error) {
	if s.source == nil || !s.source.Available() {
		s.logger.Warn("no location capability")
		return types.Coords{}, ErrCapabilityMissing
	}

	name := s.source.Name()
	s.logger.Debug("requesting current position", "source", name)

	coords, err := s.source.CurrentPosition(ctx)
	if err != nil {
		s.logger.Warn("position request failed", "source", name, "error", err)
		return types.Coords{}, &UnavailableError{Source: name, Reason: err}
	}

	if err := coords.Validate(); err != nil {
		s.logger.Warn("source returned invalid position", "source", name, "error", err)
		return types.Coords{}, &UnavailableError{Source: name, Reason: err}
	}

	s.logger.Info("acquired position",
		"source", name,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, nil
}

func (s *locationService) Validate(latitude, longitude float64) (types.Coords, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return types.Coords{}, err
	}
	return coords, nil
}
