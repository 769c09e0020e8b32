// Package transport abstracts the publish/subscribe channel between the core
// and the bin hardware. Delivery is at-least-once: handlers must tolerate
// redelivery of the same message after a reconnect.
package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DetectedWildcard matches detection events from every bin.
const DetectedWildcard = "bin/+/detected"

var ErrNotConnected = errors.New("transport not connected")

// Handler receives one message. messageID identifies the broker-level message
// and is stable across redeliveries of the same unacknowledged message.
type Handler func(topic string, payload []byte, messageID uint16)

// Client is the injected transport dependency. Components own their client via
// constructors so tests can substitute the in-memory implementation.
type Client interface {
	Publish(topic string, payload []byte) error
	Subscribe(topic string, handler Handler) error
	Connected() bool
	Close()
}

func DetectedTopic(binID uuid.UUID) string {
	return fmt.Sprintf("bin/%s/detected", binID)
}

func OpenTopic(binID uuid.UUID) string {
	return fmt.Sprintf("bin/%s/open", binID)
}

func CloseTopic(binID uuid.UUID) string {
	return fmt.Sprintf("bin/%s/close", binID)
}

// BinIDFromTopic extracts the bin id from a bin/{id}/{action} topic.
func BinIDFromTopic(topic string) (uuid.UUID, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "bin" {
		return uuid.Nil, fmt.Errorf("unexpected topic format: %s", topic)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid bin id in topic %s: %w", topic, err)
	}
	return id, nil
}
