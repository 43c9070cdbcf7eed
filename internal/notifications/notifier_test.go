package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"inkpost/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postEvent struct {
	Action string          `json:"action"`
	Post   json.RawMessage `json:"post"`
}

func readEvent(t *testing.T, client *Client, action string) postEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case data := <-client.send:
			var ev postEvent
			require.NoError(t, json.Unmarshal(data, &ev))
			if ev.Action == action {
				return ev
			}
		case <-deadline:
			t.Fatalf("no %q event received", action)
		}
	}
}

func TestNotifierBroadcastsDirectlyWithoutRedis(t *testing.T) {
	hub := NewHub()
	notifier := NewPostNotifier(hub, nil)

	client, err := hub.Register(nil)
	require.NoError(t, err)

	post := &models.Post{ID: 1, Title: "Fresh post", Content: "Body", ImageURL: "images/a"}
	notifier.PostCreated(context.Background(), post)

	ev := readEvent(t, client, ActionCreate)
	var got models.Post
	require.NoError(t, json.Unmarshal(ev.Post, &got))
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "Fresh post", got.Title)
}

func TestNotifierDeleteCarriesOnlyID(t *testing.T) {
	hub := NewHub()
	notifier := NewPostNotifier(hub, nil)

	client, err := hub.Register(nil)
	require.NoError(t, err)

	notifier.PostDeleted(context.Background(), 42)

	ev := readEvent(t, client, ActionDelete)
	var id uint
	require.NoError(t, json.Unmarshal(ev.Post, &id))
	assert.Equal(t, uint(42), id)
}

func TestNotifierFansOutThroughRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	hub := NewHub()
	notifier := NewPostNotifier(hub, rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notifier.StartSubscriber(ctx)

	client, err := hub.Register(nil)
	require.NoError(t, err)

	// wait for the subscription before publishing anything real
	require.Eventually(t, func() bool {
		return mr.Publish(postsChannel, `{"action":"noop"}`) == 1
	}, 2*time.Second, 10*time.Millisecond)

	post := &models.Post{ID: 7, Title: "Via redis", Content: "Body", ImageURL: "images/b"}
	notifier.PostUpdated(ctx, post)

	ev := readEvent(t, client, ActionUpdate)
	var got models.Post
	require.NoError(t, json.Unmarshal(ev.Post, &got))
	assert.Equal(t, uint(7), got.ID)
}

func TestNotifierSurvivesPublishFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	hub := NewHub()
	notifier := NewPostNotifier(hub, rdb)

	mr.Close()

	// errors are logged and swallowed, never surfaced
	notifier.PostCreated(context.Background(), &models.Post{ID: 1})
}
