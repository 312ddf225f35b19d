package trace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotInitialized = errors.New("recorder is not initialized")
	ErrUnknownRun     = errors.New("unknown run")
)

// Sample is one driver frame as seen by the viewer.
type Sample struct {
	Seq     uint64
	Elapsed float64
	Cycle   float64
	EaseA   float64
	EaseB   float64
	// Calf holds the commanded calf angle per leg in FL, FR, BL, BR order.
	Calf [4]float64
}

// Run identifies one recording session.
type Run struct {
	ID      string
	Model   string
	Started time.Time
}

// Recorder persists gait samples grouped by run.
type Recorder interface {
	Init(ctx context.Context) error
	BeginRun(ctx context.Context, model string) (Run, error)
	Record(ctx context.Context, runID string, s Sample) error
	Samples(ctx context.Context, runID string) ([]Sample, bool, error)
	Runs(ctx context.Context) ([]Run, error)
	Close() error
}

// NewRecorder selects a backend. An empty backend means memory.
func NewRecorder(backend, path string) (Recorder, error) {
	switch backend {
	case "", "memory":
		return NewMemoryRecorder(), nil
	case "sqlite":
		if path == "" {
			return nil, errors.New("sqlite path is required")
		}
		return NewSQLiteRecorder(path), nil
	default:
		return nil, fmt.Errorf("unsupported trace backend: %s", backend)
	}
}

func newRun(model string) Run {
	return Run{ID: uuid.NewString(), Model: model, Started: time.Now().UTC()}
}
