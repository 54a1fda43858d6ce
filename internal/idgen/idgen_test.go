package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNew_TimeOrderedVersion(t *testing.T) {
	parsed, err := uuid.Parse(New())
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNew_SortsByCreation(t *testing.T) {
	first := New()
	second := New()
	require.LessOrEqual(t, first[:13], second[:13])
}
