// Package livequery carries collection-change notifications from the write
// path to live readers. Repositories publish a Change after each commit;
// the SSE endpoint streams the feed so UI views can re-run their queries
// without manual cache invalidation.
package livequery

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel is the redis pub/sub channel carrying change events.
const Channel = "talentflow:changes"

// Collection names, matching the five stores of the persistent layer.
const (
	CollectionJobs        = "jobs"
	CollectionCandidates  = "candidates"
	CollectionTimeline    = "candidateTimeline"
	CollectionAssessments = "assessments"
	CollectionResponses   = "assessmentResponses"
)

// Change describes one committed mutation.
type Change struct {
	Collection string `json:"collection"`
	ID         string `json:"id,omitempty"`
	Op         string `json:"op"` // create | update | delete | reset
}

// Notifier publishes changes over redis pub/sub. Publishing is best-effort:
// a failed notification is logged and dropped, never surfaced to the caller
// whose write already committed.
type Notifier struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewNotifier(rdb *redis.Client, log *zap.Logger) *Notifier {
	return &Notifier{rdb: rdb, log: log}
}

// Publish sends one change event.
func (n *Notifier) Publish(ctx context.Context, ch Change) {
	payload, err := json.Marshal(ch)
	if err != nil {
		return
	}
	if err := n.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		n.log.Warn("livequery: publish failed",
			zap.String("collection", ch.Collection),
			zap.Error(err),
		)
	}
}

// Subscribe returns a channel of decoded change events plus a cancel
// function. The channel closes when ctx ends or cancel is called.
func (n *Notifier) Subscribe(ctx context.Context) (<-chan Change, func()) {
	sub := n.rdb.Subscribe(ctx, Channel)
	out := make(chan Change, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ch Change
			if err := json.Unmarshal([]byte(msg.Payload), &ch); err != nil {
				continue
			}
			select {
			case out <- ch:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
