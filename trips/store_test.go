package trips

import (
	"context"
	"testing"
)

// id validation happens before any database call, so it is testable
// without a live Mongo.
func TestMongoStoreRejectsBadIDs(t *testing.T) {
	store := NewMongoTripStore(nil)

	for _, id := range []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzz", "66b1f0a0c4d5e6f7a8b9c0d"} {
		if _, err := store.Get(context.Background(), id); err != ErrInvalidID {
			t.Errorf("id %q: expected ErrInvalidID, got %v", id, err)
		}
	}
}
