package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"geo-weather/internal/cache"
	"geo-weather/internal/config"
	"geo-weather/internal/providers/openstreetmap"
	"geo-weather/internal/providers/openweathermap"
	"geo-weather/internal/timezone"
	"geo-weather/internal/types"
)

var (
	// ErrWeatherFetchFailed wraps every failure to obtain a forecast
	ErrWeatherFetchFailed = errors.New("weather fetch failed")

	ErrEmptyForecast = fmt.Errorf("%w: forecast contains no samples", ErrWeatherFetchFailed)
)

type ForecastProvider interface {
	// GetForecast fetches the multi-interval forecast for the given coordinates
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.ForecastAPIResponse, error)
}

// PlaceResolver names a location when the forecast provider could not
type PlaceResolver interface {
	LookupLocation(ctx context.Context, coords types.Coords) (types.LocationInfo, error)
}

type Service interface {
	GetCurrent(ctx context.Context, coords types.Coords) (*Current, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	placeResolver    PlaceResolver
	logger           *slog.Logger
}

// NewWeatherService wires the OpenWeatherMap client, the optional Redis cache,
// the timezone finder and the optional reverse geocoder from configuration
func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	var provider ForecastProvider = openweathermap.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		cfg.Weather.Timeout,
		logger,
	)

	if cfg.Cache.Enabled {
		fc, err := cache.NewRedisForecastCache(cfg.Cache, provider, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create forecast cache: %w", err)
		}
		provider = fc
	}

	tzSvc, err := timezone.NewService()
	if err != nil {
		// forecasts are still served without a timezone name
		logger.Warn("timezone lookup disabled", "error", err)
		tzSvc = nil
	}

	var resolver PlaceResolver
	if cfg.Geocode.Enabled {
		resolver = openstreetmap.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, cfg.Geocode.Timeout, logger)
	}

	return NewWeatherServiceWithProviders(provider, tzSvc, resolver, logger), nil
}

// NewWeatherServiceWithProviders creates a weather service with custom providers.
// timezoneService and placeResolver may be nil.
func NewWeatherServiceWithProviders(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	placeResolver PlaceResolver,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		placeResolver:    placeResolver,
		logger:           logger.With("component", "weather-service"),
	}
}

// GetCurrent issues one forecast request and returns its first sample
func (s *weatherService) GetCurrent(ctx context.Context, coords types.Coords) (*Current, error) {
	apiResponse, err := s.forecastProvider.GetForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Debug("failed to get forecast from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrWeatherFetchFailed, err)
	}

	current, err := mapForecastAPIResponseToCurrent(coords, apiResponse)
	if err != nil {
		s.logger.Debug("unusable forecast response", "error", err)
		return nil, err
	}

	if s.timezoneService != nil {
		zone, err := s.timezoneService.GetZone(coords.Latitude, coords.Longitude, current.ForecastTime)
		if err != nil {
			s.logger.Warn("failed to determine timezone",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"error", err,
			)
		} else {
			current.Timezone = zone.Name
			current.LocalOffsetSeconds = zone.OffsetSeconds
		}
	}

	if current.Location.Name == "" && s.placeResolver != nil {
		info, err := s.placeResolver.LookupLocation(ctx, coords)
		if err != nil {
			s.logger.Warn("failed to reverse geocode location", "error", err)
		} else {
			current.Location = info
		}
	}

	s.logger.Debug("mapped current conditions",
		"city", current.Location.Name,
		"temperature", current.Temperature.Celsius,
		"wind_direction", current.Wind.Direction,
	)

	return current, nil
}

func mapForecastAPIResponseToCurrent(coords types.Coords, apiResponse *openweathermap.ForecastAPIResponse) (*Current, error) {
	if apiResponse == nil || len(apiResponse.List) == 0 {
		return nil, ErrEmptyForecast
	}

	sample := apiResponse.List[0]

	var condition openweathermap.Condition
	if len(sample.Weather) > 0 {
		condition = sample.Weather[0]
	}

	return &Current{
		Coordinates: coords,
		Location: types.LocationInfo{
			Name:        apiResponse.City.Name,
			CountryCode: apiResponse.City.Country,
		},
		UTCOffsetSeconds: apiResponse.City.Timezone,
		ForecastTime:     time.Unix(sample.Dt, 0).UTC(),
		Temperature:      types.NewTemperatureFromCelsius(sample.Main.Temp),
		FeelsLike:        types.NewTemperatureFromCelsius(sample.Main.FeelsLike),
		Humidity:         sample.Main.Humidity,
		Pressure:         types.NewPressureFromHpa(sample.Main.Pressure),
		Wind:             types.NewWindFromMps(sample.Wind.Speed, sample.Wind.Gust, sample.Wind.Deg),
		Weather:          types.NewWeather(condition.Id, condition.Description, condition.Icon),
	}, nil
}
