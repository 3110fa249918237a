package nats

import (
	"os"
	"sync"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/unityride/internal/pkg/constants"
	"github.com/piresc/unityride/internal/pkg/models"
	natspkg "github.com/piresc/unityride/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8373
	srv := natsserver.RunServer(&opts)
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

type pushed struct {
	userID string
	event  string
	data   interface{}
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []pushed
}

func (r *recordingNotifier) NotifyClient(userID string, event string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, pushed{userID: userID, event: event, data: data})
}

func (r *recordingNotifier) snapshot() []pushed {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pushed(nil), r.calls...)
}

func TestFeedHandler_RelaysToUser(t *testing.T) {
	// Arrange
	client, err := natspkg.NewClient("nats://127.0.0.1:8373")
	require.NoError(t, err)
	defer client.Close()

	notifier := &recordingNotifier{}
	h := NewFeedHandler(client, notifier)
	require.NoError(t, h.InitNATSConsumers())
	defer h.Close()

	// Act
	require.NoError(t, client.PublishJSON("notification.created.user-7", models.Notification{
		ID: "n1", UserID: "user-7", Title: "Request Approved! ✅",
	}))

	// Assert
	require.Eventually(t, func() bool { return len(notifier.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	call := notifier.snapshot()[0]
	assert.Equal(t, "user-7", call.userID)
	assert.Equal(t, constants.EventNotificationCreated, call.event)
	assert.Equal(t, "n1", call.data.(models.Notification).ID)
}

func TestFeedHandler_HandleNotificationCreated_Invalid(t *testing.T) {
	h := NewFeedHandler(nil, &recordingNotifier{})

	assert.Error(t, h.handleNotificationCreated([]byte("not json")))
	assert.Error(t, h.handleNotificationCreated([]byte(`{"id":"n1"}`)))
}
