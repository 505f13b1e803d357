package location

import (
	"context"

	"geo-weather/internal/types"
)

// StaticSource always reports the configured position
type StaticSource struct {
	coords types.Coords
}

func NewStaticSource(coords types.Coords) *StaticSource {
	return &StaticSource{coords: coords}
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Available() bool { return true }

func (s *StaticSource) CurrentPosition(ctx context.Context) (types.Coords, error) {
	if err := ctx.Err(); err != nil {
		return types.Coords{}, err
	}
	return s.coords, nil
}
