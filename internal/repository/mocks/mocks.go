package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trainlog/trainlog/internal/domain/activity"
	"github.com/trainlog/trainlog/internal/domain/training"
)

// KeyValueStore is a mock for repository.KeyValueStore.
type KeyValueStore struct {
	mock.Mock
}

func (m *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *KeyValueStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KeyValueStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// SessionRepository is a mock for training.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) List(ctx context.Context) []training.TrainingSession {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]training.TrainingSession); ok {
		return list
	}
	return nil
}

func (m *SessionRepository) Get(ctx context.Context, id string) (training.TrainingSession, bool, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(training.TrainingSession); ok {
		return sess, args.Bool(1), args.Error(2)
	}
	return training.TrainingSession{}, args.Bool(1), args.Error(2)
}

func (m *SessionRepository) Add(ctx context.Context, sess training.TrainingSession) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Update(ctx context.Context, sess training.TrainingSession) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRecorder is a mock for training.ActivityRecorder.
type ActivityRecorder struct {
	mock.Mock
}

func (m *ActivityRecorder) Record(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
