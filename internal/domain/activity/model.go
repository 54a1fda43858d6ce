package activity

import "time"

// Type identifies what happened to the training log.
type Type string

const (
	TypeSessionCreated  Type = "session_created"
	TypeSessionUpdated  Type = "session_updated"
	TypeSessionDeleted  Type = "session_deleted"
	TypeExerciseAdded   Type = "exercise_added"
	TypeExerciseRemoved Type = "exercise_removed"
	TypeSessionsCleared Type = "sessions_cleared"
)

// Entry is one event in the history of the training log
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
