package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Location source names
const (
	SourceNone   = "none"
	SourceStatic = "static"
	SourceGPS    = "gps"
	SourceMQTT   = "mqtt"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Weather  WeatherConfig
	Map      MapConfig
	Location LocationConfig
	Cache    CacheConfig
	Geocode  GeocodeConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// WeatherConfig holds the forecast provider settings
type WeatherConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// MapConfig holds the map embed settings
type MapConfig struct {
	BaseURL string
	APIKey  string
	Zoom    int
	MapType string
}

// LocationConfig selects and configures the location source
type LocationConfig struct {
	Source string // none, static, gps, mqtt
	Static StaticConfig
	GPS    GPSConfig
	MQTT   MQTTConfig
}

type StaticConfig struct {
	Latitude  float64
	Longitude float64
}

type GPSConfig struct {
	Port     string
	BaudRate int
	Timeout  time.Duration
}

type MQTTConfig struct {
	Broker   string
	Topic    string
	ClientID string
	Timeout  time.Duration
}

// CacheConfig holds the optional Redis forecast cache settings
type CacheConfig struct {
	Enabled   bool
	RedisAddr string
	Password  string
	DB        int
	TTL       time.Duration
}

// GeocodeConfig holds the reverse geocoding fallback settings
type GeocodeConfig struct {
	Enabled   bool
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Load reads configuration from a .env file, a config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine, secrets may come from the real environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.geo-weather")

	SetDefaults(v)

	// Read from environment variables, e.g. GEO_WEATHER_WEATHER_APIKEY
	v.SetEnvPrefix("GEO_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// SetDefaults registers every known key so environment overrides are picked up on unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("weather.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.apikey", "")
	v.SetDefault("weather.timeout", 10*time.Second)

	v.SetDefault("map.baseurl", "https://www.google.com")
	v.SetDefault("map.apikey", "")
	v.SetDefault("map.zoom", 12)
	v.SetDefault("map.maptype", "roadmap")

	v.SetDefault("location.source", SourceNone)
	v.SetDefault("location.static.latitude", 0.0)
	v.SetDefault("location.static.longitude", 0.0)
	v.SetDefault("location.gps.port", "")
	v.SetDefault("location.gps.baudrate", 9600)
	v.SetDefault("location.gps.timeout", 30*time.Second)
	v.SetDefault("location.mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("location.mqtt.topic", "inertial/gps")
	v.SetDefault("location.mqtt.clientid", "geo-weather")
	v.SetDefault("location.mqtt.timeout", 30*time.Second)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.redisaddr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("geocode.enabled", false)
	v.SetDefault("geocode.baseurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("geocode.useragent", "geo-weather/1.0")
	v.SetDefault("geocode.timeout", 5*time.Second)
}

// FromViper unmarshals and validates a populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		return errors.New("invalid config: weather.apikey is required")
	}

	switch strings.ToLower(c.Location.Source) {
	case "", SourceNone, SourceStatic, SourceMQTT:
	case SourceGPS:
		if c.Location.GPS.Port == "" {
			return errors.New("invalid config: location.gps.port is required for the gps source")
		}
	default:
		return fmt.Errorf("invalid config: unknown location.source %q", c.Location.Source)
	}

	if c.Map.Zoom < 0 || c.Map.Zoom > 21 {
		return fmt.Errorf("invalid config: map.zoom must be between 0 and 21, got %d", c.Map.Zoom)
	}

	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
