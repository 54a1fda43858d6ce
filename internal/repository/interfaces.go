package repository

import (
	"context"

	"github.com/trainlog/trainlog/internal/domain/activity"
)

// KeyValueStore is an opaque string slot store. Set replaces the whole value
// of a key in one step; readers never observe a partial write.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ActivityRepository manages history persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
	List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}
