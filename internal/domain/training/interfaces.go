package training

import (
	"context"

	"github.com/trainlog/trainlog/internal/domain/activity"
)

// Repository is the durable collection of training sessions. List fails open
// to an empty collection; Get reports storage failures separately from absence.
type Repository interface {
	List(ctx context.Context) []TrainingSession
	Get(ctx context.Context, id string) (TrainingSession, bool, error)
	Add(ctx context.Context, sess TrainingSession) error
	Update(ctx context.Context, sess TrainingSession) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// ActivityRecorder records history entries for session mutations.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *activity.Entry) error
}
