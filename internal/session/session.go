// Package session sequences location acquisition, map embedding and the
// weather fetch for each user action and keeps the resulting state.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geo-weather/internal/types"
	"geo-weather/internal/weather"
)

// Phase tells how far the latest sequence got
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLocated  Phase = "located"
	PhaseComplete Phase = "complete"
	PhaseFailed   Phase = "failed"
)

// State is the whole application state rendered by the presenter.
// Every published State replaces the previous one.
type State struct {
	Seq         uint64
	Phase       Phase
	UpdatedAt   time.Time
	Coordinates *types.Coords
	MapURL      string
	Weather     *weather.Current
	// Err is the user-visible failure of the latest sequence, if any.
	// Weather failures are never stored here.
	Err error
}

// Locator acquires and validates coordinates
type Locator interface {
	Acquire(ctx context.Context) (types.Coords, error)
	Validate(latitude, longitude float64) (types.Coords, error)
}

// MapEmbedder builds the display URL for coordinates
type MapEmbedder interface {
	Enabled() bool
	EmbedURL(coords types.Coords) (string, error)
}

// Session runs one acquire-and-fetch sequence at a time.
// Starting a new sequence cancels the one in flight, and a cancelled
// sequence never publishes.
type Session struct {
	locator Locator
	weather weather.Service
	maps    MapEmbedder
	logger  *slog.Logger
	now     func() time.Time

	mu          sync.Mutex
	seq         uint64
	cancel      context.CancelFunc
	state       State
	subscribers map[chan State]struct{}
}

func New(locator Locator, weatherSvc weather.Service, maps MapEmbedder, logger *slog.Logger) *Session {
	return &Session{
		locator:     locator,
		weather:     weatherSvc,
		maps:        maps,
		logger:      logger.With("component", "session"),
		now:         time.Now,
		state:       State{Phase: PhaseIdle},
		subscribers: make(map[chan State]struct{}),
	}
}

// Trigger acquires the current position from the location source, then renders
// location and map, then fetches the weather. Location failures are returned and
// stored in the state; weather failures are only logged.
func (s *Session) Trigger(ctx context.Context) (State, error) {
	ctx, seq := s.begin(ctx)
	defer s.finish(seq)

	coords, err := s.locator.Acquire(ctx)
	if err != nil {
		if !s.latest(seq) {
			return s.Current(), context.Canceled
		}
		st := State{Seq: seq, Phase: PhaseFailed, Err: err}
		s.publish(seq, st)
		return st, err
	}

	return s.run(ctx, seq, coords)
}

// Show runs the sequence for caller supplied coordinates
func (s *Session) Show(ctx context.Context, latitude, longitude float64) (State, error) {
	coords, err := s.locator.Validate(latitude, longitude)
	if err != nil {
		return State{}, err
	}

	ctx, seq := s.begin(ctx)
	defer s.finish(seq)

	return s.run(ctx, seq, coords)
}

func (s *Session) run(ctx context.Context, seq uint64, coords types.Coords) (State, error) {
	st := State{Seq: seq, Phase: PhaseLocated, Coordinates: &coords}

	if s.maps != nil && s.maps.Enabled() {
		mapURL, err := s.maps.EmbedURL(coords)
		if err != nil {
			s.logger.Warn("failed to build map url", "error", err)
		}
		st.MapURL = mapURL
	}

	if !s.publish(seq, st) {
		return s.Current(), context.Canceled
	}

	current, err := s.weather.GetCurrent(ctx, coords)
	if err != nil {
		if !s.latest(seq) {
			return s.Current(), context.Canceled
		}
		s.logger.Error("error fetching weather data",
			"seq", seq,
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return st, nil
	}

	st.Phase = PhaseComplete
	st.Weather = current
	if !s.publish(seq, st) {
		return s.Current(), context.Canceled
	}
	return st, nil
}

// begin cancels any sequence in flight and starts a new one
func (s *Session) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	s.cancel = cancel

	s.logger.Debug("sequence started", "seq", s.seq)
	return ctx, s.seq
}

// publish stores st if seq is still the latest sequence
func (s *Session) publish(seq uint64, st State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.Debug("dropping superseded state", "seq", seq, "latest", s.seq)
		return false
	}

	st.UpdatedAt = s.now().UTC()
	s.state = st

	for ch := range s.subscribers {
		select {
		case ch <- st:
		default:
			// slow subscriber, it will catch up with the next state
		}
	}
	return true
}

// finish releases the context of seq if no newer sequence replaced it
func (s *Session) finish(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.seq && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) latest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}

// Current returns the latest published state
func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel receiving every published state, starting with
// the current one, and a function that ends the subscription
func (s *Session) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 4)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	ch <- s.state
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
}
