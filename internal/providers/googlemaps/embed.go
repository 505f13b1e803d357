package googlemaps

import (
	"fmt"
	"net/url"
	"strconv"

	"geo-weather/internal/types"
)

// API Docs: https://developers.google.com/maps/documentation/embed/embedding-map
// Sample URL: https://www.google.com/maps/embed/v1/place?key=KEY&q=51.5,-0.12&zoom=12&maptype=roadmap
const (
	baseURL        = "https://www.google.com"
	embedPath      = "/maps/embed/v1/place"
	DefaultZoom    = 12
	DefaultMapType = "roadmap"
)

// Embedder builds display-only map URLs. Nothing is fetched.
type Embedder struct {
	baseURL string
	apiKey  string
	zoom    int
	mapType string
}

func NewEmbedder(apiKey, base string, zoom int, mapType string) *Embedder {
	if base == "" {
		base = baseURL
	}
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	if mapType == "" {
		mapType = DefaultMapType
	}
	return &Embedder{
		baseURL: base,
		apiKey:  apiKey,
		zoom:    zoom,
		mapType: mapType,
	}
}

// Enabled reports whether a key is configured; without one the embed API refuses to render
func (e *Embedder) Enabled() bool {
	return e.apiKey != ""
}

// EmbedURL returns the iframe source centered on the given coordinates
func (e *Embedder) EmbedURL(coords types.Coords) (string, error) {
	u, err := url.Parse(e.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath(embedPath)
	q := u.Query()
	q.Set("key", e.apiKey)
	q.Set("q", coords.String())
	q.Set("zoom", strconv.Itoa(e.zoom))
	q.Set("maptype", e.mapType)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
