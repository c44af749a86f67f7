package reminder

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Publisher delivers a reminder to one user.
type Publisher interface {
	Publish(userID int, title, body string) error
}

// MQTTPublisher pushes reminders to per-user topics; connected clients
// subscribe to users/<id>/reminders.
type MQTTPublisher struct {
	client mqtt.Client
}

type reminderPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(client mqtt.Client) {
		log.Info().Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

func (p *MQTTPublisher) Publish(userID int, title, body string) error {
	payload, err := json.Marshal(reminderPayload{Title: title, Body: body})
	if err != nil {
		return err
	}
	topic := fmt.Sprintf("users/%d/reminders", userID)
	token := p.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish reminder to %s: %w", topic, token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
