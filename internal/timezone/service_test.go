package timezone

import (
	"testing"
	"time"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "New York City",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_GetZone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		latitude   float64
		longitude  float64
		wantName   string
		wantOffset int
	}{
		{"London in winter", 51.5074, -0.1278, "Europe/London", 0},
		{"Tokyo", 35.6762, 139.6503, "Asia/Tokyo", 9 * 3600},
		{"Kolkata", 22.5726, 88.3639, "Asia/Kolkata", 19800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, err := svc.GetZone(tt.latitude, tt.longitude, winter)
			if err != nil {
				t.Fatalf("GetZone() error = %v", err)
			}
			if zone.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", zone.Name, tt.wantName)
			}
			if zone.OffsetSeconds != tt.wantOffset {
				t.Errorf("OffsetSeconds = %v, want %v", zone.OffsetSeconds, tt.wantOffset)
			}
		})
	}
}
