package location

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	nmea "github.com/adrianmo/go-nmea"
	serial "github.com/jacobsa/go-serial/serial"

	"geo-weather/internal/config"
	"geo-weather/internal/types"
)

// ErrNoFix is returned when the NMEA stream ends without a usable position
var ErrNoFix = errors.New("gps stream ended without a valid fix")

// GPSSource reads NMEA sentences from a serial GPS receiver
type GPSSource struct {
	options serial.OpenOptions
	timeout time.Duration
	logger  *slog.Logger
	open    func(serial.OpenOptions) (io.ReadWriteCloser, error)
}

func NewGPSSource(cfg config.GPSConfig, logger *slog.Logger) *GPSSource {
	baud := cfg.BaudRate
	if baud <= 0 {
		baud = 9600
	}
	return &GPSSource{
		options: serial.OpenOptions{
			PortName:              cfg.Port,
			BaudRate:              uint(baud),
			DataBits:              8,
			StopBits:              1,
			MinimumReadSize:       1,
			ParityMode:            serial.PARITY_NONE,
			InterCharacterTimeout: 0,
		},
		timeout: cfg.Timeout,
		logger:  logger.With("component", "gps-source"),
		open:    serial.Open,
	}
}

func (g *GPSSource) Name() string { return "gps" }

// Available reports whether the configured device node exists
func (g *GPSSource) Available() bool {
	if g.options.PortName == "" {
		return false
	}
	_, err := os.Stat(g.options.PortName)
	return err == nil
}

// CurrentPosition opens the port and returns the first valid fix.
// The port is closed when ctx ends, which unblocks the pending read.
func (g *GPSSource) CurrentPosition(ctx context.Context) (types.Coords, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	port, err := g.open(g.options)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to open %s: %w", g.options.PortName, err)
	}
	defer port.Close()

	g.logger.Debug("gps serial port opened",
		"port", g.options.PortName,
		"baud", g.options.BaudRate,
	)

	type result struct {
		coords types.Coords
		err    error
	}
	done := make(chan result, 1)

	go func() {
		coords, err := ReadFix(port)
		done <- result{coords, err}
	}()

	select {
	case r := <-done:
		return r.coords, r.err
	case <-ctx.Done():
		_ = port.Close()
		return types.Coords{}, fmt.Errorf("timed out waiting for gps fix: %w", ctx.Err())
	}
}

// ReadFix scans NMEA sentences until a valid RMC or GGA fix appears.
// Unparsable lines and sentences without a fix are skipped.
func ReadFix(r io.Reader) (types.Coords, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "$") {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			continue
		}

		if coords, ok := fixFromSentence(sentence); ok {
			return coords, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return types.Coords{}, fmt.Errorf("gps read error: %w", err)
	}
	return types.Coords{}, ErrNoFix
}

func fixFromSentence(sentence nmea.Sentence) (types.Coords, bool) {
	switch sentence.DataType() {
	case nmea.TypeRMC:
		m := sentence.(nmea.RMC)
		if m.Validity != nmea.ValidRMC {
			return types.Coords{}, false
		}
		return types.NewCoords(m.Latitude, m.Longitude), true
	case nmea.TypeGGA:
		m := sentence.(nmea.GGA)
		if m.FixQuality == "" || m.FixQuality == nmea.Invalid {
			return types.Coords{}, false
		}
		return types.NewCoords(m.Latitude, m.Longitude), true
	default:
		return types.Coords{}, false
	}
}
