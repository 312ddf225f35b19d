package trace

import (
	"context"
	"sort"
	"sync"
)

type MemoryRecorder struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]Run
	samples     map[string]map[uint64]Sample
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Init(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.initialized = true
	r.runs = make(map[string]Run)
	r.samples = make(map[string]map[uint64]Sample)
	return nil
}

func (r *MemoryRecorder) BeginRun(_ context.Context, model string) (Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return Run{}, ErrNotInitialized
	}
	run := newRun(model)
	r.runs[run.ID] = run
	r.samples[run.ID] = make(map[uint64]Sample)
	return run, nil
}

func (r *MemoryRecorder) Record(_ context.Context, runID string, s Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	if _, ok := r.runs[runID]; !ok {
		return ErrUnknownRun
	}
	// Same (run, seq) replaces the stored sample.
	r.samples[runID][s.Seq] = s
	return nil
}

func (r *MemoryRecorder) Samples(_ context.Context, runID string) ([]Sample, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, false, ErrNotInitialized
	}
	if _, ok := r.runs[runID]; !ok {
		return nil, false, nil
	}
	out := make([]Sample, 0, len(r.samples[runID]))
	for _, s := range r.samples[runID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, true, nil
}

func (r *MemoryRecorder) Runs(_ context.Context) ([]Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]Run, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out, nil
}

func (r *MemoryRecorder) Close() error { return nil }
