package mq

import (
	"context"
	"testing"

	"trippy/models"
	"trippy/rdx"
)

func TestEmitWithoutRedisIsNoOp(t *testing.T) {
	if rdx.Conn != nil {
		t.Skip("redis configured in test environment")
	}

	// must not panic or block
	Emit(context.Background(), "trip-saved", models.Index{
		EntityType: "trip",
		Method:     "POST",
		EntityId:   "abc123",
		ItemId:     "Paris",
		ItemType:   "plan",
	})
}
