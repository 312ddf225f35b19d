package trace

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRecorder(t *testing.T, rec Recorder) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, rec.Init(ctx))
	t.Cleanup(func() { _ = rec.Close() })

	run, err := rec.BeginRun(ctx, "quadtrot_b2")
	require.NoError(t, err)
	_, err = uuid.Parse(run.ID)
	require.NoError(t, err)

	for i := uint64(1); i <= 3; i++ {
		s := Sample{Seq: i, Elapsed: float64(i) / 60, Cycle: 0.1 * float64(i), EaseA: 0.5, Calf: [4]float64{-1, -1.2, -1.2, -1}}
		require.NoError(t, rec.Record(ctx, run.ID, s))
	}

	got, ok, err := rec.Samples(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(2), got[1].Seq)
	assert.InDelta(t, 0.3, got[2].Cycle, 1e-12)
	assert.Equal(t, -1.2, got[0].Calf[1])

	// Recording a seq again replaces it in place.
	require.NoError(t, rec.Record(ctx, run.ID, Sample{Seq: 2, Cycle: 0.9}))
	got, _, err = rec.Samples(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(2), got[1].Seq)
	assert.InDelta(t, 0.9, got[1].Cycle, 1e-12)
	assert.Equal(t, uint64(3), got[2].Seq)

	_, ok, err = rec.Samples(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	second, err := rec.BeginRun(ctx, "other")
	require.NoError(t, err)
	runs, err := rec.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	ids := []string{runs[0].ID, runs[1].ID}
	assert.ElementsMatch(t, []string{run.ID, second.ID}, ids)
}

func TestMemoryRecorder(t *testing.T) {
	exerciseRecorder(t, NewMemoryRecorder())
}

func TestSQLiteRecorder(t *testing.T) {
	exerciseRecorder(t, NewSQLiteRecorder(filepath.Join(t.TempDir(), "trace.db")))
}

func TestSQLiteRecorderPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trace.db")

	rec := NewSQLiteRecorder(path)
	require.NoError(t, rec.Init(ctx))
	run, err := rec.BeginRun(ctx, "b2")
	require.NoError(t, err)
	require.NoError(t, rec.Record(ctx, run.ID, Sample{Seq: 7, EaseB: 1}))
	require.NoError(t, rec.Close())

	reopened := NewSQLiteRecorder(path)
	require.NoError(t, reopened.Init(ctx))
	defer reopened.Close()
	got, ok, err := reopened.Samples(ctx, run.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].EaseB)
}

func TestRecorderRequiresInit(t *testing.T) {
	ctx := context.Background()
	_, err := NewMemoryRecorder().BeginRun(ctx, "x")
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = NewSQLiteRecorder("unused.db").BeginRun(ctx, "x")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestMemoryRecordUnknownRun(t *testing.T) {
	rec := NewMemoryRecorder()
	require.NoError(t, rec.Init(context.Background()))
	assert.ErrorIs(t, rec.Record(context.Background(), "nope", Sample{}), ErrUnknownRun)
}

func TestNewRecorder(t *testing.T) {
	rec, err := NewRecorder("", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryRecorder{}, rec)

	rec, err = NewRecorder("sqlite", "x.db")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRecorder{}, rec)

	_, err = NewRecorder("sqlite", "")
	assert.Error(t, err)
	_, err = NewRecorder("redis", "")
	assert.Error(t, err)
}
