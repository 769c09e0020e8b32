package transport

import (
	"strings"
	"sync"
)

// InMemClient is a broker-less Client for tests and local runs. Messages are
// delivered synchronously to matching subscribers.
type InMemClient struct {
	mu        sync.Mutex
	subs      map[string]Handler
	nextID    uint16
	published []Message
	closed    bool
}

// Message records one published message for assertions.
type Message struct {
	Topic   string
	Payload []byte
	ID      uint16
}

func NewInMemClient() *InMemClient {
	return &InMemClient{subs: make(map[string]Handler)}
}

func (c *InMemClient) Publish(topic string, payload []byte) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrNotConnected
	}
	c.nextID++
	id := c.nextID
	c.published = append(c.published, Message{Topic: topic, Payload: payload, ID: id})
	handlers := c.matching(topic)
	c.mu.Unlock()

	for _, h := range handlers {
		h(topic, payload, id)
	}
	return nil
}

// Redeliver pushes a message with a caller-chosen id, mimicking a broker
// redelivery of an unacknowledged message.
func (c *InMemClient) Redeliver(topic string, payload []byte, id uint16) {
	c.mu.Lock()
	handlers := c.matching(topic)
	c.mu.Unlock()

	for _, h := range handlers {
		h(topic, payload, id)
	}
}

func (c *InMemClient) Subscribe(topic string, handler Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrNotConnected
	}
	c.subs[topic] = handler
	return nil
}

func (c *InMemClient) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *InMemClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Published returns a copy of everything published so far.
func (c *InMemClient) Published() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.published))
	copy(out, c.published)
	return out
}

func (c *InMemClient) matching(topic string) []Handler {
	var out []Handler
	for pattern, h := range c.subs {
		if topicMatches(pattern, topic) {
			out = append(out, h)
		}
	}
	return out
}

// topicMatches implements MQTT single-level (+) and multi-level (#) wildcards.
func topicMatches(pattern, topic string) bool {
	pp := strings.Split(pattern, "/")
	tp := strings.Split(topic, "/")

	for i, p := range pp {
		if p == "#" {
			return true
		}
		if i >= len(tp) {
			return false
		}
		if p != "+" && p != tp[i] {
			return false
		}
	}
	return len(pp) == len(tp)
}
