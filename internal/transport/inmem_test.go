package transport

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInMemClient_PublishDelivers(t *testing.T) {
	client := NewInMemClient()
	binID := uuid.New()

	var got []Message
	err := client.Subscribe(DetectedWildcard, func(topic string, payload []byte, messageID uint16) {
		got = append(got, Message{Topic: topic, Payload: payload, ID: messageID})
	})
	assert.NoError(t, err)

	assert.NoError(t, client.Publish(DetectedTopic(binID), []byte(`{"a":1}`)))
	assert.NoError(t, client.Publish(OpenTopic(binID), []byte(`ignored`)))
	assert.NoError(t, client.Publish(DetectedTopic(binID), []byte(`{"a":2}`)))

	assert.Len(t, got, 2)
	assert.Equal(t, []byte(`{"a":1}`), got[0].Payload)
	assert.Equal(t, []byte(`{"a":2}`), got[1].Payload)

	// ids increment per publish, never reused for new messages
	assert.NotEqual(t, got[0].ID, got[1].ID)

	assert.Len(t, client.Published(), 3)
}

func TestInMemClient_RedeliverKeepsMessageID(t *testing.T) {
	client := NewInMemClient()
	binID := uuid.New()

	var ids []uint16
	assert.NoError(t, client.Subscribe(DetectedWildcard, func(_ string, _ []byte, messageID uint16) {
		ids = append(ids, messageID)
	}))

	assert.NoError(t, client.Publish(DetectedTopic(binID), []byte(`{}`)))
	client.Redeliver(DetectedTopic(binID), []byte(`{}`), ids[0])

	assert.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1])
}

func TestInMemClient_Close(t *testing.T) {
	client := NewInMemClient()
	assert.True(t, client.Connected())

	client.Close()
	assert.False(t, client.Connected())
	assert.ErrorIs(t, client.Publish("bin/x/detected", nil), ErrNotConnected)
	assert.ErrorIs(t, client.Subscribe("bin/+/detected", nil), ErrNotConnected)
}
