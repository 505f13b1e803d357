//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: London
	lat := 51.5074
	lon := -0.1278

	client := NewClient("", "", 0, slog.New(slog.NewTextHandler(os.Stdout, nil)))

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Lookup(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.PlaceId == 0 {
		t.Error("PlaceId is 0")
	}
	if resp.Address.CountryCode != "gb" {
		t.Errorf("Expected country code gb, got %q", resp.Address.CountryCode)
	}

	t.Logf("  Place: %s", resp.Place())
	t.Log("✓ API call successful, response structure valid")
}
