package openweathermap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const londonForecast = `{
  "cod": "200",
  "cnt": 2,
  "list": [
    {
      "dt": 1700000000,
      "main": {"temp": 15, "feels_like": 14, "pressure": 1013.25, "humidity": 70},
      "weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
      "wind": {"speed": 5, "deg": 200, "gust": 7.1},
      "dt_txt": "2023-11-14 21:00:00"
    },
    {
      "dt": 1700010800,
      "main": {"temp": 13, "feels_like": 12, "pressure": 1012, "humidity": 75},
      "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10n"}],
      "wind": {"speed": 6, "deg": 210}
    }
  ],
  "city": {"id": 2643743, "name": "London", "country": "GB", "timezone": 0}
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GetForecast(t *testing.T) {
	var gotQuery map[string]string
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"lat":   r.URL.Query().Get("lat"),
			"lon":   r.URL.Query().Get("lon"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, londonForecast)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL+"/data/2.5", 5*time.Second, testLogger())

	resp, err := client.GetForecast(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("GetForecast() unexpected error = %v", err)
	}

	if gotPath != "/data/2.5/forecast" {
		t.Errorf("path = %q, want %q", gotPath, "/data/2.5/forecast")
	}

	wantQuery := map[string]string{"lat": "51.5", "lon": "-0.12", "appid": "test-key", "units": "metric"}
	for k, want := range wantQuery {
		if gotQuery[k] != want {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], want)
		}
	}

	if resp.City.Name != "London" || resp.City.Country != "GB" {
		t.Errorf("City = %+v, want London, GB", resp.City)
	}
	if len(resp.List) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(resp.List))
	}

	first := resp.List[0]
	if first.Main.Temp != 15 || first.Main.Pressure != 1013.25 || first.Wind.Deg != 200 {
		t.Errorf("first sample = %+v", first)
	}
	if first.Weather[0].Description != "clear sky" {
		t.Errorf("description = %q, want %q", first.Weather[0].Description, "clear sky")
	}
}

func TestClient_GetForecast_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		apiKey      string
		errContains string
	}{
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        "boom",
			apiKey:      "k",
			errContains: "fetch returned status 500: boom",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"cod":401,"message":"Invalid API key"}`,
			apiKey:      "k",
			errContains: "status 401",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"list": [`,
			apiKey:      "k",
			errContains: "failed to decode response",
		},
		{
			name:        "missing key",
			status:      http.StatusOK,
			body:        londonForecast,
			apiKey:      "",
			errContains: "api key is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(tt.apiKey, srv.URL, time.Second, testLogger())
			_, err := client.GetForecast(context.Background(), 1, 2)
			if err == nil {
				t.Fatal("GetForecast() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("GetForecast() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestClient_GetForecast_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := NewClient("secret-key", base, time.Second, testLogger())
	_, err := client.GetForecast(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("GetForecast() expected error but got none")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("error leaks api key: %v", err)
	}
}
