// Package store keeps the training session collection in a single key-value
// slot. Every mutation reads the whole collection, changes it in memory and
// writes it back in one Set call.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/trainlog/trainlog/internal/domain/training"
	"github.com/trainlog/trainlog/internal/repository"
)

// DefaultKey is the slot the collection is stored under.
const DefaultKey = "training_sessions"

// SessionStore is the sole owner of the persisted session collection. A
// store-wide mutex covers each read-modify-write cycle, so concurrent callers
// are queued instead of overwriting each other.
type SessionStore struct {
	kv     repository.KeyValueStore
	key    string
	logger *slog.Logger

	mu sync.Mutex
}

// New creates a SessionStore over kv. An empty key selects DefaultKey.
func New(kv repository.KeyValueStore, key string, logger *slog.Logger) *SessionStore {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SessionStore{kv: kv, key: key, logger: logger}
}

// Key returns the storage slot used by the store.
func (s *SessionStore) Key() string {
	return s.key
}

// List returns the stored sessions in collection order. A missing, unreadable
// or corrupt slot yields an empty list; the failure is logged, not returned.
// Individual records that cannot be decoded are logged and left out.
func (s *SessionStore) List(ctx context.Context) []training.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		s.logger.Error("failed to load training sessions", "key", s.key, "error", err)
		return []training.TrainingSession{}
	}
	return doc.Sessions
}

// Get returns the first session with the given ID. Read failures are returned
// rather than reported as a missing session.
func (s *SessionStore) Get(ctx context.Context, id string) (training.TrainingSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return training.TrainingSession{}, false, fmt.Errorf("loading sessions: %w", err)
	}
	for _, sess := range doc.Sessions {
		if sess.ID == id {
			return sess, true, nil
		}
	}
	return training.TrainingSession{}, false, nil
}

// ReplaceAll writes sessions as the whole collection.
func (s *SessionStore) ReplaceAll(ctx context.Context, sessions []training.TrainingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, Document{Sessions: sessions})
}

// Add appends sess to the collection.
func (s *SessionStore) Add(ctx context.Context, sess training.TrainingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("adding session: %w", err)
	}
	doc.Sessions = append(doc.Sessions, sess.Clone())
	if err := s.write(ctx, doc); err != nil {
		s.logger.Error("failed to add training session", "session_id", sess.ID, "error", err)
		return fmt.Errorf("adding session: %w", err)
	}
	return nil
}

// Update replaces the first session whose ID matches sess.ID. Without a match
// nothing is written and nil is returned.
func (s *SessionStore) Update(ctx context.Context, sess training.TrainingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	idx := -1
	for i := range doc.Sessions {
		if doc.Sessions[i].ID == sess.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug("update skipped, session not stored", "session_id", sess.ID)
		return nil
	}

	doc.Sessions[idx] = sess.Clone()
	if err := s.write(ctx, doc); err != nil {
		s.logger.Error("failed to update training session", "session_id", sess.ID, "error", err)
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

// Delete removes every session with the given ID. The collection is rewritten
// even when nothing matched.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	kept := doc.Sessions[:0]
	for _, sess := range doc.Sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	doc.Sessions = kept
	if err := s.write(ctx, doc); err != nil {
		s.logger.Error("failed to delete training session", "session_id", id, "error", err)
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Clear removes the storage slot entirely.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, s.key); err != nil {
		s.logger.Error("failed to clear training sessions", "error", err)
		return fmt.Errorf("clearing sessions: %w", err)
	}
	return nil
}

// load reads the slot. A missing slot, or a value that is not a session
// collection at all, yields an empty Document and nil so the next write
// replaces it. Read failures and values from a newer schema are returned so
// callers never write over data they could not see.
func (s *SessionStore) load(ctx context.Context) (Document, error) {
	empty := Document{Sessions: []training.TrainingSession{}}

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", s.key, err)
	}
	if !ok {
		return empty, nil
	}
	doc, err := Decode([]byte(raw))
	switch {
	case errors.Is(err, ErrUnsupportedVersion):
		return Document{}, err
	case err != nil:
		s.logger.Error("discarding undecodable training sessions", "key", s.key, "bytes", len(raw), "error", err)
		return empty, nil
	}
	for _, rec := range doc.Unreadable {
		s.logger.Warn("skipping unreadable training session", "key", s.key, "index", rec.Index, "error", rec.Err)
	}
	return doc, nil
}

func (s *SessionStore) write(ctx context.Context, doc Document) error {
	data, err := Encode(doc.Sessions, doc.Unreadable...)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	return nil
}
