package nats

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	srv := natsserver.RunServer(&opts)
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

func TestNewClient_ConnectionError(t *testing.T) {
	_, err := NewClient("nats://127.0.0.1:1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishJSONAndSubscribe(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.IsConnected())

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe("notification.created.*", func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.PublishJSON("notification.created.u1", map[string]string{"title": "hi"}))

	select {
	case msg := <-msgCh:
		assert.Equal(t, "notification.created.u1", msg.Subject)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(msg.Data, &payload))
		assert.Equal(t, "hi", payload["title"])
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestClient_PublishJSON_MarshalError(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	err = client.PublishJSON("x", make(chan int))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal")
}
