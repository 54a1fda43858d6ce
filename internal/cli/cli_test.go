package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trainlog/trainlog/internal/domain/training"
)

var fixedNow = time.Date(2024, 6, 15, 7, 30, 0, 0, time.Local)

type harness struct {
	t      *testing.T
	dbPath string
}

type result struct {
	stdout string
	stderr string
	err    error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, key := range []string{
		"TRAINLOG_CONFIG_PATH",
		"TRAINLOG_DB_PATH",
		"TRAINLOG_STORAGE_BACKEND",
		"TRAINLOG_STORAGE_KEY",
		"TRAINLOG_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	return &harness{t: t, dbPath: filepath.Join(t.TempDir(), "data", "trainlog.db")}
}

func (h *harness) run(args ...string) result {
	h.t.Helper()
	var stdout, stderr, logs bytes.Buffer
	full := append([]string{"--db", h.dbPath}, args...)
	err := Run(context.Background(), full, Options{
		Stdout:    &stdout,
		Stderr:    &stderr,
		LogWriter: &logs,
		Now:       func() time.Time { return fixedNow },
	})
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// add runs the add command and returns the new session ID.
func (h *harness) add(args ...string) string {
	h.t.Helper()
	res := h.run(append([]string{"add"}, args...)...)
	require.NoError(h.t, res.err, res.stderr)
	first := strings.SplitN(res.stdout, "\n", 2)[0]
	id := strings.TrimPrefix(first, "Created session ")
	require.NotEqual(h.t, first, id)
	return id
}

func TestAddAndShow(t *testing.T) {
	h := newHarness(t)
	id := h.add("--date", "01/06/2024", "--time", "6:00 PM", "--tag", "Pierna", "--exercise", "Squat:5:5:225")

	res := h.run("show", id)
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "01/06/2024")
	require.Contains(t, res.stdout, "6:00 PM")
	require.Contains(t, res.stdout, "Pierna")
	require.Contains(t, res.stdout, "Squat")
	require.Contains(t, res.stdout, "5x5")
	require.Contains(t, res.stdout, "225lb")
}

func TestAddDefaultsDateAndTimeToNow(t *testing.T) {
	h := newHarness(t)
	id := h.add("--tag", "Brazo")

	res := h.run("show", id)
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "15/06/2024")
	require.Contains(t, res.stdout, "7:30 AM")
	require.Contains(t, res.stdout, "No exercises added")
}

func TestAddValidationPrintsEachField(t *testing.T) {
	h := newHarness(t)

	res := h.run("add", "--date", "", "--time", "")
	require.ErrorIs(t, res.err, training.ErrInvalidInput)
	require.Contains(t, res.stderr, "date: Date is required")
	require.Contains(t, res.stderr, "time: Time is required")
	require.Contains(t, res.stderr, "tag: Tag is required")

	list := h.run("list")
	require.NoError(t, list.err)
	require.Contains(t, list.stdout, "No training sessions yet")
}

func TestAddRejectsBadExercise(t *testing.T) {
	h := newHarness(t)

	res := h.run("add", "--tag", "Brazo", "--exercise", "Curl:30:12:25")
	require.ErrorIs(t, res.err, training.ErrInvalidInput)
	require.Contains(t, res.stderr, "sets:")
}

func TestListNewestFirst(t *testing.T) {
	h := newHarness(t)
	h.add("--date", "01/01/2024", "--tag", "Brazo")
	h.add("--date", "20/03/2024", "--tag", "Pecho")
	h.add("--date", "05/11/2023", "--tag", "Cardio")

	res := h.run("list")
	require.NoError(t, res.err)
	a := strings.Index(res.stdout, "20/03/2024")
	b := strings.Index(res.stdout, "01/01/2024")
	c := strings.Index(res.stdout, "05/11/2023")
	require.True(t, a >= 0 && a < b && b < c, res.stdout)
}

func TestEditKeepsUnchangedFields(t *testing.T) {
	h := newHarness(t)
	id := h.add("--date", "01/06/2024", "--time", "6:00 PM", "--tag", "Pierna", "--exercise", "Squat:5:5:225")

	res := h.run("edit", id, "--tag", "Espalda")
	require.NoError(t, res.err, res.stderr)
	require.Contains(t, res.stdout, "Updated session "+id)

	show := h.run("show", id)
	require.Contains(t, show.stdout, "Espalda")
	require.Contains(t, show.stdout, "01/06/2024")
	require.Contains(t, show.stdout, "6:00 PM")
	require.Contains(t, show.stdout, "Squat")

	bad := h.run("edit", id, "--date", "31/02/2024")
	require.ErrorIs(t, bad.err, training.ErrInvalidInput)
	require.Contains(t, bad.stderr, "Date must be in DD/MM/YYYY format")
}

func TestExerciseAddRemove(t *testing.T) {
	h := newHarness(t)
	id := h.add("--tag", "Brazo")

	res := h.run("exercise", "add", id, "--name", "Curl", "--sets", "3", "--reps", "12", "--weight", "25")
	require.NoError(t, res.err, res.stderr)
	first := strings.SplitN(res.stdout, "\n", 2)[0]
	exID := strings.TrimPrefix(first, "Added exercise ")
	require.NotEqual(t, first, exID)

	bad := h.run("exercise", "add", id, "--name", "C")
	require.ErrorIs(t, bad.err, training.ErrInvalidInput)
	require.Contains(t, bad.stderr, "name:")

	show := h.run("show", id)
	require.Contains(t, show.stdout, "12x3")

	missing := h.run("exercise", "remove", id, "nope")
	require.ErrorIs(t, missing.err, training.ErrExerciseNotFound)
	require.Contains(t, missing.stderr, "Exercise not found")

	require.NoError(t, h.run("exercise", "remove", id, exID).err)
	show = h.run("show", id)
	require.Contains(t, show.stdout, "No exercises added")
}

func TestShowAndDeleteMissing(t *testing.T) {
	h := newHarness(t)

	res := h.run("show", "missing")
	require.ErrorIs(t, res.err, training.ErrSessionNotFound)
	require.Contains(t, res.stderr, "Session not found")

	res = h.run("delete", "missing")
	require.ErrorIs(t, res.err, training.ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	keep := h.add("--tag", "Brazo")
	gone := h.add("--tag", "Pierna")

	res := h.run("delete", gone)
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Deleted session "+gone)

	list := h.run("list")
	require.Contains(t, list.stdout, keep)
	require.NotContains(t, list.stdout, gone)
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.add("--tag", "Brazo")

	res := h.run("reset")
	require.True(t, errors.Is(res.err, errResetNotConfirmed))
	require.Contains(t, h.run("list").stdout, "Brazo")

	res = h.run("reset", "--yes")
	require.NoError(t, res.err)
	require.Contains(t, h.run("list").stdout, "No training sessions yet")
}

func TestHistory(t *testing.T) {
	h := newHarness(t)
	id := h.add("--tag", "Brazo")
	other := h.add("--tag", "Pierna")
	require.NoError(t, h.run("delete", other).err)

	res := h.run("history")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "session_created")
	require.Contains(t, res.stdout, "session_deleted")

	res = h.run("history", "--session", id)
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Brazo")
	require.NotContains(t, res.stdout, "session_deleted")

	res = h.run("history", "--limit", "1")
	require.Len(t, strings.Split(strings.TrimSpace(res.stdout), "\n"), 1)
}

func TestStatsAndTags(t *testing.T) {
	h := newHarness(t)
	h.add("--date", "01/06/2024", "--tag", "Brazo", "--exercise", "Curl:3:10:20")
	h.add("--date", "02/06/2024", "--tag", "Brazo")

	res := h.run("stats")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Sessions:      2")
	require.Contains(t, res.stdout, "600 lb")
	require.Contains(t, res.stdout, "02/06/2024")

	res = h.run("tags")
	require.NoError(t, res.err)
	for _, tag := range training.KnownTags() {
		require.Contains(t, res.stdout, tag)
	}
}

func TestMemoryBackendStartsEmpty(t *testing.T) {
	h := newHarness(t)
	h.add("--tag", "Brazo")

	t.Setenv("TRAINLOG_STORAGE_BACKEND", "memory")
	res := h.run("list")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "No training sessions yet")
}

func TestInvalidLogLevel(t *testing.T) {
	h := newHarness(t)

	res := h.run("--log-level", "loud", "list")
	require.Error(t, res.err)
	require.Contains(t, res.stderr, "invalid log level")
}

func TestParseExercise(t *testing.T) {
	tests := []struct {
		raw  string
		want training.Exercise
	}{
		{raw: "Curl:3:12:25", want: training.Exercise{Name: "Curl", Sets: 3, Reps: 12, Weight: 25}},
		{raw: "Plank", want: training.Exercise{Name: "Plank"}},
		{raw: "Row:4", want: training.Exercise{Name: "Row", Sets: 4}},
		{raw: "Press: seated:3:8:60", want: training.Exercise{Name: "Press: seated", Sets: 3, Reps: 8, Weight: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseExercise(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := parseExercise("Curl:x")
	require.ErrorIs(t, err, training.ErrInvalidInput)
}

func TestDateFlagHelpShowsLayout(t *testing.T) {
	h := newHarness(t)

	res := h.run("add", "--help")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Session date ("+training.DateLayout+")")
}
