package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"geo-weather/internal/config"
	"geo-weather/internal/types"
)

// Mock source for testing

type mockSource struct {
	available bool
	coords    types.Coords
	err       error
	calls     int
}

func (m *mockSource) Name() string    { return "mock" }
func (m *mockSource) Available() bool { return m.available }
func (m *mockSource) CurrentPosition(ctx context.Context) (types.Coords, error) {
	m.calls++
	return m.coords, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_Acquire(t *testing.T) {
	tests := []struct {
		name        string
		source      *mockSource
		nilSource   bool
		wantErr     error
		errContains string
		wantCalls   int
		want        types.Coords
	}{
		{
			name:      "successful acquisition",
			source:    &mockSource{available: true, coords: types.NewCoords(51.5, -0.12)},
			want:      types.NewCoords(51.5, -0.12),
			wantCalls: 1,
		},
		{
			name:      "no source configured",
			nilSource: true,
			wantErr:   ErrCapabilityMissing,
		},
		{
			name:      "source not available is never asked",
			source:    &mockSource{available: false, coords: types.NewCoords(1, 1)},
			wantErr:   ErrCapabilityMissing,
			wantCalls: 0,
		},
		{
			name:        "source denied",
			source:      &mockSource{available: true, err: errors.New("User denied Geolocation")},
			wantErr:     ErrLocationUnavailable,
			errContains: "User denied Geolocation",
			wantCalls:   1,
		},
		{
			name:        "source timed out",
			source:      &mockSource{available: true, err: context.DeadlineExceeded},
			wantErr:     context.DeadlineExceeded,
			errContains: "error fetching location",
			wantCalls:   1,
		},
		{
			name:      "source returned out of range position",
			source:    &mockSource{available: true, coords: types.NewCoords(123, 0)},
			wantErr:   ErrInvalidLatitude,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var src Source
			if !tt.nilSource {
				src = tt.source
			}
			service := NewLocationService(src, testLogger())

			got, err := service.Acquire(context.Background())

			if tt.source != nil && tt.source.calls != tt.wantCalls {
				t.Errorf("CurrentPosition called %d times, want %d", tt.source.calls, tt.wantCalls)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Acquire() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Acquire() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Acquire() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Acquire() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnavailableError_CarriesSource(t *testing.T) {
	service := NewLocationService(&mockSource{available: true, err: errors.New("denied")}, testLogger())

	_, err := service.Acquire(context.Background())

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Acquire() error = %T, want *UnavailableError", err)
	}
	if unavailable.Source != "mock" {
		t.Errorf("Source = %q, want %q", unavailable.Source, "mock")
	}
	if errors.Is(err, ErrCapabilityMissing) {
		t.Error("unavailable error must not match ErrCapabilityMissing")
	}
}

func TestLocationService_Validate(t *testing.T) {
	service := NewLocationService(nil, testLogger())

	if _, err := service.Validate(51.5, -0.12); err != nil {
		t.Errorf("Validate() unexpected error = %v", err)
	}
	if _, err := service.Validate(-91, 0); !errors.Is(err, ErrInvalidLatitude) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidLatitude)
	}
	if _, err := service.Validate(0, 181); !errors.Is(err, ErrInvalidLongitude) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidLongitude)
	}
}

func TestNewSourceFromConfig(t *testing.T) {
	tests := []struct {
		source   string
		wantName string
		wantNil  bool
		wantErr  bool
	}{
		{source: "", wantNil: true},
		{source: config.SourceNone, wantNil: true},
		{source: config.SourceStatic, wantName: "static"},
		{source: config.SourceGPS, wantName: "gps"},
		{source: config.SourceMQTT, wantName: "mqtt"},
		{source: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			cfg := config.LocationConfig{
				Source: tt.source,
				Static: config.StaticConfig{Latitude: 1, Longitude: 2},
				GPS:    config.GPSConfig{Port: "/dev/null"},
				MQTT:   config.MQTTConfig{Broker: "tcp://localhost:1883", Topic: "inertial/gps"},
			}

			src, err := NewSourceFromConfig(cfg, testLogger())
			if tt.wantErr {
				if err == nil {
					t.Error("NewSourceFromConfig() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSourceFromConfig() unexpected error = %v", err)
			}
			if tt.wantNil {
				if src != nil {
					t.Errorf("NewSourceFromConfig() = %v, want nil", src)
				}
				return
			}
			if src.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", src.Name(), tt.wantName)
			}
		})
	}
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(types.NewCoords(48.1, 11.5))

	got, err := NewLocationService(src, testLogger()).Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() unexpected error = %v", err)
	}
	if got != types.NewCoords(48.1, 11.5) {
		t.Errorf("Acquire() = %+v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.CurrentPosition(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("CurrentPosition() error = %v, want %v", err, context.Canceled)
	}
}
