package transport

import (
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/ecorecycle/smartbin/internal/config"
)

const (
	// QoS 1: the broker persists messages until acknowledged and may redeliver.
	qosAtLeastOnce = 1

	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	keepAlive      = 60 * time.Second
)

// MQTTClient adapts the paho client to the Client interface. Paho acknowledges
// a QoS 1 message only after the handler returns, so handlers that persist
// before returning get ack-after-durability for free.
type MQTTClient struct {
	client mqtt.Client

	mu   sync.Mutex
	subs map[string]Handler
}

func NewMQTTClient(cfg *config.Config) (*MQTTClient, error) {
	c := &MQTTClient{subs: make(map[string]Handler)}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetCleanSession(false).
		SetAutoReconnect(true).
		SetResumeSubs(true).
		SetKeepAlive(keepAlive).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			zap.L().Warn("mqtt connection lost", zap.Error(err))
		})

	c.client = mqtt.NewClient(opts)

	token := c.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", cfg.BrokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("can't connect to mqtt broker %s: %w", cfg.BrokerURL, err)
	}
	return c, nil
}

func (c *MQTTClient) onConnect(client mqtt.Client) {
	zap.L().Info("connected to mqtt broker")

	c.mu.Lock()
	defer c.mu.Unlock()
	for topic, handler := range c.subs {
		if err := c.subscribe(topic, handler); err != nil {
			zap.L().Error("resubscribe failed", zap.String("topic", topic), zap.Error(err))
		}
	}
}

func (c *MQTTClient) Publish(topic string, payload []byte) error {
	token := c.client.Publish(topic, qosAtLeastOnce, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("can't publish to %s: %w", topic, err)
	}
	return nil
}

func (c *MQTTClient) Subscribe(topic string, handler Handler) error {
	c.mu.Lock()
	c.subs[topic] = handler
	c.mu.Unlock()

	return c.subscribe(topic, handler)
}

func (c *MQTTClient) subscribe(topic string, handler Handler) error {
	token := c.client.Subscribe(topic, qosAtLeastOnce, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload(), msg.MessageID())
	})
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("subscribe to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("can't subscribe to %s: %w", topic, err)
	}
	zap.L().Info("subscribed", zap.String("topic", topic))
	return nil
}

func (c *MQTTClient) Connected() bool {
	return c.client.IsConnectionOpen()
}

func (c *MQTTClient) Close() {
	c.client.Disconnect(250)
}
