package journal

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/simplelist/internal/processor"
	"github.com/mesh-intelligence/simplelist/pkg/types"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpen_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	defer j.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, path, j.Path())
}

func TestJournal_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	runID, err := j.BeginRun(ctx, RunInfo{Input: "in.txt", Output: "out.txt", Mode: types.ModeStrict, Format: types.FormatText})
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	entries := []processor.Entry{
		{Seq: 1, Command: types.Command{Verb: types.VerbCreate, Name: "istack1", Arg: "stack", HasArg: true}},
		{Seq: 2, Command: types.Command{Verb: types.VerbPush, Name: "istack1", Arg: "5", HasArg: true}},
		{Seq: 3, Command: types.Command{Verb: types.VerbPop, Name: "istack1"}, Value: "5", Popped: true},
		{Seq: 4, Command: types.Command{Verb: types.VerbPop, Name: "istack1"}, Err: types.ErrListEmpty},
	}
	for _, e := range entries {
		require.NoError(t, j.Record(ctx, e))
	}
	stats := processor.Stats{Commands: 4, Created: 1, Pushed: 1, Popped: 1, Errors: 1}
	require.NoError(t, j.EndRun(ctx, stats, nil))

	runs, err := j.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, StatusCompleted, runs[0].Status)
	assert.Equal(t, stats, runs[0].Stats)
	assert.Equal(t, "in.txt", runs[0].Input)
	require.NotNil(t, runs[0].FinishedAt)
	assert.False(t, runs[0].FinishedAt.Before(runs[0].StartedAt))

	got, err := j.Entries(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Seq: 1, Verb: "create", Name: "istack1", Arg: "stack", Outcome: "ok"},
		{Seq: 2, Verb: "push", Name: "istack1", Arg: "5", Outcome: "ok"},
		{Seq: 3, Verb: "pop", Name: "istack1", Outcome: "popped", Value: "5"},
		{Seq: 4, Verb: "pop", Name: "istack1", Outcome: "This list is empty!"},
	}, got)
}

func TestJournal_FailedRun(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	_, err := j.BeginRun(ctx, RunInfo{Input: "in", Output: "out", Mode: types.ModeCompat, Format: types.FormatJSON})
	require.NoError(t, err)
	require.NoError(t, j.EndRun(ctx, processor.Stats{Commands: 2}, errors.New("write transcript: broken pipe")))

	runs, err := j.Runs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, StatusFailed, runs[0].Status)
	assert.Equal(t, types.ModeCompat, runs[0].Mode)
}

func TestJournal_CancelledRunIsCommittedAsFailed(t *testing.T) {
	j := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := j.BeginRun(ctx, RunInfo{Input: "in.txt", Output: "out.txt"})
	require.NoError(t, err)
	require.NoError(t, j.Record(ctx, processor.Entry{Seq: 1, Command: types.Command{Verb: types.VerbPop, Name: "snoname"}, Err: types.ErrNameNotFound}))
	cancel()

	require.NoError(t, j.EndRun(ctx, processor.Stats{Commands: 1, Errors: 1}, context.Canceled))

	runs, err := j.Runs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, StatusFailed, runs[0].Status)

	entries, err := j.Entries(context.Background(), runs[0].RunID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "This name does not exist!", entries[0].Outcome)
}

func TestJournal_RunsNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := j.BeginRun(ctx, RunInfo{Input: "in", Output: "out", Mode: types.ModeStrict, Format: types.FormatText})
		require.NoError(t, err)
		require.NoError(t, j.EndRun(ctx, processor.Stats{}, nil))
		ids = append(ids, id)
	}

	runs, err := j.Runs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].RunID)
	assert.Equal(t, ids[1], runs[1].RunID)
}

func TestJournal_StateErrors(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	assert.ErrorIs(t, j.Record(ctx, processor.Entry{Seq: 1}), types.ErrNoActiveRun)
	assert.ErrorIs(t, j.EndRun(ctx, processor.Stats{}, nil), types.ErrNoActiveRun)

	_, err := j.BeginRun(ctx, RunInfo{})
	require.NoError(t, err)
	_, err = j.BeginRun(ctx, RunInfo{})
	assert.ErrorIs(t, err, types.ErrRunActive)

	// Closing rolls back the unfinished run.
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	_, err = j.Runs(ctx, 0)
	assert.ErrorIs(t, err, types.ErrJournalClosed)
	_, err = j.BeginRun(ctx, RunInfo{})
	assert.ErrorIs(t, err, types.ErrJournalClosed)
}

func TestJournal_UnfinishedRunIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	_, err = j.BeginRun(ctx, RunInfo{Input: "in", Output: "out", Mode: types.ModeStrict, Format: types.FormatText})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Runs(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestJournal_RecordsProcessorRun(t *testing.T) {
	ctx := context.Background()
	j := openTemp(t)

	runID, err := j.BeginRun(ctx, RunInfo{Input: "mem", Output: "-", Mode: types.ModeStrict, Format: types.FormatText})
	require.NoError(t, err)

	out, err := processor.NewTranscript(io.Discard, types.FormatText)
	require.NoError(t, err)
	p := processor.New(types.Config{}, out, processor.WithRecorder(j))

	stats, err := p.Run(ctx, strings.NewReader("create squeue queue push squeue hi pop squeue pop snoname"))
	require.NoError(t, err)
	require.NoError(t, j.EndRun(ctx, stats, nil))

	entries, err := j.Entries(ctx, runID)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "hi", entries[2].Value)
	assert.Equal(t, "This name does not exist!", entries[3].Outcome)
}
