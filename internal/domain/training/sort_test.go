package training

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByDateDesc(t *testing.T) {
	sessions := []TrainingSession{
		{ID: "a", Date: NewDate(2024, 1, 1)},
		{ID: "b", Date: NewDate(2024, 6, 15)},
		{ID: "c", Date: NewDate(2023, 3, 3)},
	}
	SortByDateDesc(sessions)

	got := []string{sessions[0].Date.String(), sessions[1].Date.String(), sessions[2].Date.String()}
	require.Equal(t, []string{"15/06/2024", "01/01/2024", "03/03/2023"}, got)
}

func TestSortByDateDesc_StableTies(t *testing.T) {
	sessions := []TrainingSession{
		{ID: "first", Date: NewDate(2024, 1, 1)},
		{ID: "newer", Date: NewDate(2024, 2, 1)},
		{ID: "second", Date: NewDate(2024, 1, 1)},
		{ID: "third", Date: NewDate(2024, 1, 1)},
	}
	SortByDateDesc(sessions)

	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	require.Equal(t, []string{"newer", "first", "second", "third"}, ids)
}

func TestSortByDateDesc_Empty(t *testing.T) {
	SortByDateDesc(nil)
	SortByDateDesc([]TrainingSession{})
}
