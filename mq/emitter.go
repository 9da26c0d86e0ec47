package mq

import (
	"context"
	"encoding/json"
	"log"

	"trippy/models"
	"trippy/rdx"
)

// Channel trip events are published on. External indexers subscribe to
// it; nothing in this backend consumes the channel.
const tripEventsChannel = "trip-events"

// Emit publishes an indexing event to Redis. It is best-effort: with no
// Redis connection it is a silent no-op, and a publish failure is logged
// and swallowed so a save never fails because of eventing.
func Emit(ctx context.Context, eventName string, content models.Index) {
	if rdx.Conn == nil {
		return
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, tripEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s event: %v", eventName, err)
		return
	}

	log.Printf("[Emit] %s event published to %q", eventName, tripEventsChannel)
}
