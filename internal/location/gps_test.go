package location

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	serial "github.com/jacobsa/go-serial/serial"

	"geo-weather/internal/config"
	"geo-weather/internal/types"
)

const (
	rmcValid   = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A"
	rmcVoid    = "$GPRMC,123519,V,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*7D"
	ggaValid   = "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	ggaNoFix   = "$GPGGA,123519,4807.038,N,01131.000,E,0,00,,,M,,M,,*52"
	gsv        = "$GPGSV,3,1,11,03,03,111,00,04,15,270,00,06,01,010,00,13,06,292,00*74"
	badChecksm = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*00"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestReadFix(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    types.Coords
		wantErr error
	}{
		{
			name:  "valid rmc",
			input: []string{rmcValid},
			want:  types.NewCoords(48.1173, 11.516667),
		},
		{
			name:  "valid gga",
			input: []string{ggaValid},
			want:  types.NewCoords(48.1173, 11.516667),
		},
		{
			name:  "skips noise until fix",
			input: []string{"", "garbage", gsv, badChecksm, rmcVoid, ggaNoFix, rmcValid},
			want:  types.NewCoords(48.1173, 11.516667),
		},
		{
			name:    "no fix in stream",
			input:   []string{gsv, rmcVoid, ggaNoFix},
			wantErr: ErrNoFix,
		},
		{
			name:    "empty stream",
			input:   nil,
			wantErr: ErrNoFix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFix(strings.NewReader(strings.Join(tt.input, "\r\n")))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadFix() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFix() unexpected error = %v", err)
			}
			if !approxEqual(got.Latitude, tt.want.Latitude) || !approxEqual(got.Longitude, tt.want.Longitude) {
				t.Errorf("ReadFix() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// fakePort is an in-memory serial port
type fakePort struct {
	io.Reader
	closed chan struct{}
}

func (p *fakePort) Write(b []byte) (int, error) { return len(b), nil }
func (p *fakePort) Close() error {
	select {
	case <-p.closed:
	default:
		close(p.closed)
	}
	return nil
}

// blockingReader blocks until the port is closed
type blockingReader struct {
	closed chan struct{}
}

func (r *blockingReader) Read(b []byte) (int, error) {
	<-r.closed
	return 0, io.EOF
}

func TestGPSSource_CurrentPosition(t *testing.T) {
	src := NewGPSSource(config.GPSConfig{Port: "/dev/fake", BaudRate: 4800}, testLogger())

	var opened serial.OpenOptions
	src.open = func(opts serial.OpenOptions) (io.ReadWriteCloser, error) {
		opened = opts
		return &fakePort{Reader: strings.NewReader(gsv + "\n" + rmcValid + "\n"), closed: make(chan struct{})}, nil
	}

	got, err := src.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("CurrentPosition() unexpected error = %v", err)
	}
	if !approxEqual(got.Latitude, 48.1173) {
		t.Errorf("Latitude = %v, want %v", got.Latitude, 48.1173)
	}
	if opened.PortName != "/dev/fake" || opened.BaudRate != 4800 {
		t.Errorf("opened with %+v", opened)
	}
}

func TestGPSSource_CurrentPosition_Timeout(t *testing.T) {
	src := NewGPSSource(config.GPSConfig{Port: "/dev/fake", Timeout: 20 * time.Millisecond}, testLogger())

	src.open = func(opts serial.OpenOptions) (io.ReadWriteCloser, error) {
		closed := make(chan struct{})
		return &fakePort{Reader: &blockingReader{closed: closed}, closed: closed}, nil
	}

	_, err := src.CurrentPosition(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("CurrentPosition() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestGPSSource_CurrentPosition_OpenError(t *testing.T) {
	src := NewGPSSource(config.GPSConfig{Port: "/dev/fake"}, testLogger())
	src.open = func(opts serial.OpenOptions) (io.ReadWriteCloser, error) {
		return nil, errors.New("permission denied")
	}

	_, err := src.CurrentPosition(context.Background())
	if err == nil || !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("CurrentPosition() error = %v, want permission denied", err)
	}
}

func TestGPSSource_Available(t *testing.T) {
	if NewGPSSource(config.GPSConfig{}, testLogger()).Available() {
		t.Error("Available() = true without a port")
	}
	if NewGPSSource(config.GPSConfig{Port: "/definitely/not/a/tty"}, testLogger()).Available() {
		t.Error("Available() = true for a missing device")
	}
	if !NewGPSSource(config.GPSConfig{Port: t.TempDir()}, testLogger()).Available() {
		t.Error("Available() = false for an existing path")
	}
}
