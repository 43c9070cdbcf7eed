package notifications

import (
	"context"
	"encoding/json"

	"inkpost/internal/models"
	"inkpost/internal/observability"

	"github.com/redis/go-redis/v9"
)

// postsChannel is the redis pub/sub channel carrying post change events.
const postsChannel = "posts"

// Post change actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// PostNotifier broadcasts post change events after successful mutations.
// With a redis client configured, events fan out through pub/sub so every
// instance's hub sees them; without one, events go straight to the local
// hub. Either way delivery is fire-and-forget: failures are logged and
// swallowed, and an event dropped between commit and broadcast stays
// dropped.
type PostNotifier struct {
	hub    *Hub
	rdb    *redis.Client
	logger *observability.Logger
}

// NewPostNotifier creates a notifier over the given hub. rdb may be nil.
func NewPostNotifier(hub *Hub, rdb *redis.Client) *PostNotifier {
	return &PostNotifier{
		hub:    hub,
		rdb:    rdb,
		logger: observability.Component("notifications"),
	}
}

// PostCreated broadcasts a "create" event.
func (n *PostNotifier) PostCreated(ctx context.Context, post *models.Post) {
	n.publish(ctx, map[string]interface{}{"action": ActionCreate, "post": post})
}

// PostUpdated broadcasts an "update" event.
func (n *PostNotifier) PostUpdated(ctx context.Context, post *models.Post) {
	n.publish(ctx, map[string]interface{}{"action": ActionUpdate, "post": post})
}

// PostDeleted broadcasts a "delete" event carrying only the deleted id.
func (n *PostNotifier) PostDeleted(ctx context.Context, postID uint) {
	n.publish(ctx, map[string]interface{}{"action": ActionDelete, "post": postID})
}

func (n *PostNotifier) publish(ctx context.Context, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		observability.LogAsyncOperationError(ctx, "post_event_publish", err, nil)
		return
	}

	if n.rdb == nil {
		n.hub.Broadcast(data)
		return
	}

	if err := n.rdb.Publish(ctx, postsChannel, data).Err(); err != nil {
		observability.LogAsyncOperationError(ctx, "post_event_publish", err,
			map[string]interface{}{"channel": postsChannel})
	}
}

// StartSubscriber wires the redis channel into the local hub. It is a no-op
// without a redis client. The subscription ends when ctx is cancelled.
func (n *PostNotifier) StartSubscriber(ctx context.Context) {
	if n.rdb == nil {
		return
	}

	sub := n.rdb.Subscribe(ctx, postsChannel)
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				n.hub.Broadcast([]byte(msg.Payload))
			}
		}
	}()
}
