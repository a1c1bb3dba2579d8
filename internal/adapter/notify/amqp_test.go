package notify_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/adapter/notify"
	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const amqpEnv = "AMQP_URL"

func TestBroadcaster_PublishesToFanout(t *testing.T) {
	url := os.Getenv(amqpEnv)
	if url == "" {
		t.Skipf("%s is not set", amqpEnv)
	}

	b, err := notify.NewBroadcaster(url, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "", "waiter_notices", false, nil))

	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	hub := notify.NewHub(4, zap.NewNop(), b)
	hub.Notify(context.Background(), domain.ErrorNotice("Invalid food price for Soup").To(3))

	select {
	case d := <-deliveries:
		assert.Equal(t, "application/json", d.ContentType)

		var body map[string]any
		require.NoError(t, json.Unmarshal(d.Body, &body))
		assert.Equal(t, "Invalid food price for Soup", body["message"])
		assert.Equal(t, "ERROR", body["level"])
		assert.EqualValues(t, 1, body["seq"])
		assert.EqualValues(t, 3, body["waiter_id"])
	case <-time.After(5 * time.Second):
		t.Fatal("notice was not broadcast")
	}
}
