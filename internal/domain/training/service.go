package training

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/trainlog/trainlog/internal/domain/activity"
	"github.com/trainlog/trainlog/internal/idgen"
)

// Service orchestrates the training log: listing, form submission and
// exercise editing. Mutations are serialised so a lookup followed by a write
// is never interleaved with another mutation.
type Service struct {
	repo     Repository
	activity ActivityRecorder
	logger   *slog.Logger
	newID    func() string

	mu sync.Mutex
}

// NewService creates a new training service. activityRec may be nil.
func NewService(repo Repository, activityRec ActivityRecorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		repo:     repo,
		activity: activityRec,
		logger:   logger,
		newID:    idgen.New,
	}
}

// List returns all sessions, newest first.
func (s *Service) List(ctx context.Context) []TrainingSession {
	sessions := s.repo.List(ctx)
	SortByDateDesc(sessions)
	return sessions
}

// Get fetches a session by ID.
func (s *Service) Get(ctx context.Context, id string) (TrainingSession, error) {
	return s.lookup(ctx, id)
}

func (s *Service) lookup(ctx context.Context, id string) (TrainingSession, error) {
	sess, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return TrainingSession{}, fmt.Errorf("getting session: %w", err)
	}
	if !ok {
		return TrainingSession{}, ErrSessionNotFound
	}
	return sess, nil
}

// Create validates the form and stores a new session.
func (s *Service) Create(ctx context.Context, in SessionInput) (TrainingSession, error) {
	sess, err := in.Build(s.newID())
	if err != nil {
		return TrainingSession{}, err
	}
	s.assignExerciseIDs(&sess)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Add(ctx, sess); err != nil {
		return TrainingSession{}, fmt.Errorf("creating session: %w", err)
	}
	s.record(ctx, sess.ID, activity.TypeSessionCreated,
		fmt.Sprintf("%s %s on %s", sess.Tag, sess.Time, sess.Date))
	return sess, nil
}

// Update validates the form and replaces the stored session with the same ID.
func (s *Service) Update(ctx context.Context, id string, in SessionInput) (TrainingSession, error) {
	sess, err := in.Build(id)
	if err != nil {
		return TrainingSession{}, err
	}
	s.assignExerciseIDs(&sess)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(ctx, id); err != nil {
		return TrainingSession{}, err
	}
	if err := s.repo.Update(ctx, sess); err != nil {
		return TrainingSession{}, fmt.Errorf("updating session: %w", err)
	}
	s.record(ctx, sess.ID, activity.TypeSessionUpdated,
		fmt.Sprintf("%s %s on %s", sess.Tag, sess.Time, sess.Date))
	return sess, nil
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	s.record(ctx, id, activity.TypeSessionDeleted,
		fmt.Sprintf("%s on %s", sess.Tag, sess.Date))
	return nil
}

// AddExercise validates the exercise form and appends the result to a session.
func (s *Service) AddExercise(ctx context.Context, sessionID string, in ExerciseInput) (Exercise, error) {
	ex, err := in.Build(s.newID())
	if err != nil {
		return Exercise{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return Exercise{}, err
	}
	sess.Exercises = append(sess.Exercises, ex)
	if err := s.repo.Update(ctx, sess); err != nil {
		return Exercise{}, fmt.Errorf("adding exercise: %w", err)
	}
	s.record(ctx, sessionID, activity.TypeExerciseAdded,
		fmt.Sprintf("%s %dx%d @ %d lbs", ex.Name, ex.Sets, ex.Reps, ex.Weight))
	return ex, nil
}

// RemoveExercise deletes one exercise from a session.
func (s *Service) RemoveExercise(ctx context.Context, sessionID, exerciseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return err
	}
	idx := sess.FindExercise(exerciseID)
	if idx < 0 {
		return ErrExerciseNotFound
	}
	removed := sess.Exercises[idx]
	sess.Exercises = append(sess.Exercises[:idx], sess.Exercises[idx+1:]...)
	if err := s.repo.Update(ctx, sess); err != nil {
		return fmt.Errorf("removing exercise: %w", err)
	}
	s.record(ctx, sessionID, activity.TypeExerciseRemoved, removed.Name)
	return nil
}

// Reset removes every session.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}
	s.record(ctx, "", activity.TypeSessionsCleared, "all sessions removed")
	return nil
}

func (s *Service) assignExerciseIDs(sess *TrainingSession) {
	for i := range sess.Exercises {
		if sess.Exercises[i].ID == "" {
			sess.Exercises[i].ID = s.newID()
		}
	}
}

func (s *Service) record(ctx context.Context, sessionID string, typ activity.Type, summary string) {
	if s.activity == nil {
		return
	}
	entry := &activity.Entry{SessionID: sessionID, Type: typ, Summary: summary}
	if err := s.activity.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "type", typ, "session_id", sessionID, "error", err)
	}
}
