package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"geo-weather/internal/config"
	"geo-weather/internal/types"
)

// Fix is the JSON GPS fix published by receivers on the MQTT topic
type Fix struct {
	Time      string  `json:"time"`
	Date      string  `json:"date"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Validity  string  `json:"validity"` // "A" valid, "V" void, empty when unknown
}

// MQTTSource waits for the next (or retained) fix on a broker topic
type MQTTSource struct {
	options   *mqtt.ClientOptions
	broker    string
	topic     string
	timeout   time.Duration
	logger    *slog.Logger
	newClient func(*mqtt.ClientOptions) mqtt.Client
}

func NewMQTTSource(cfg config.MQTTConfig, logger *slog.Logger) *MQTTSource {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(10 * time.Second)

	return &MQTTSource{
		options:   opts,
		broker:    cfg.Broker,
		topic:     cfg.Topic,
		timeout:   cfg.Timeout,
		logger:    logger.With("component", "mqtt-source"),
		newClient: mqtt.NewClient,
	}
}

func (m *MQTTSource) Name() string { return "mqtt" }

func (m *MQTTSource) Available() bool {
	return m.broker != "" && m.topic != ""
}

func (m *MQTTSource) CurrentPosition(ctx context.Context) (types.Coords, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	client := m.newClient(m.options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return types.Coords{}, fmt.Errorf("failed to connect to %s: %w", m.broker, token.Error())
	}
	defer client.Disconnect(250)

	fixes := make(chan types.Coords, 1)
	token := client.Subscribe(m.topic, 0, m.handler(fixes))
	token.Wait()
	if token.Error() != nil {
		return types.Coords{}, fmt.Errorf("failed to subscribe to %s: %w", m.topic, token.Error())
	}
	defer client.Unsubscribe(m.topic)

	m.logger.Debug("waiting for gps fix", "topic", m.topic)

	select {
	case coords := <-fixes:
		return coords, nil
	case <-ctx.Done():
		return types.Coords{}, fmt.Errorf("timed out waiting for fix on %s: %w", m.topic, ctx.Err())
	}
}

// handler decodes fixes and keeps only the first one
func (m *MQTTSource) handler(fixes chan<- types.Coords) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		coords, err := DecodeFix(msg.Payload())
		if err != nil {
			m.logger.Debug("ignoring mqtt payload", "topic", msg.Topic(), "error", err)
			return
		}
		select {
		case fixes <- coords:
		default:
		}
	}
}

// DecodeFix parses a JSON fix payload, rejecting void fixes
func DecodeFix(payload []byte) (types.Coords, error) {
	var fix Fix
	if err := json.Unmarshal(payload, &fix); err != nil {
		return types.Coords{}, fmt.Errorf("failed to decode fix: %w", err)
	}
	if fix.Validity != "" && fix.Validity != "A" {
		return types.Coords{}, errors.New("fix is not valid")
	}
	return types.NewCoords(fix.Latitude, fix.Longitude), nil
}
