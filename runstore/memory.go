// SPDX-License-Identifier: MIT

package runstore

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/katalvlaran/ddpgrowth/ctxlog"
)

// MemoryStore keeps encoded records in a map, so callers never share slices
// with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string][]byte
}

// NewMemoryStore returns an empty store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store.
func (s *MemoryStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string][]byte)
	ctxlog.FromContext(ctx).Debug("runstore initialized", "backend", "memory")

	return nil
}

// SaveRun inserts or replaces rec.
func (s *MemoryStore) SaveRun(_ context.Context, rec RunRecord) error {
	if rec.ID == "" {
		return ErrEmptyID
	}
	payload, err := EncodeRun(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}
	s.runs[rec.ID] = payload

	return nil
}

// GetRun returns the record saved under id.
func (s *MemoryStore) GetRun(_ context.Context, id string) (RunRecord, bool, error) {
	if id == "" {
		return RunRecord{}, false, ErrEmptyID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return RunRecord{}, false, ErrNotInitialized
	}
	payload, ok := s.runs[id]
	if !ok {
		return RunRecord{}, false, nil
	}
	rec, err := DecodeRun(payload)
	if err != nil {
		return RunRecord{}, false, err
	}

	return rec, true, nil
}

// ListRuns returns every record ordered by CreatedAt, then ID.
func (s *MemoryStore) ListRuns(_ context.Context) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return nil, ErrNotInitialized
	}

	out := make([]RunRecord, 0, len(s.runs))
	for _, payload := range s.runs {
		rec, err := DecodeRun(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	sortRuns(out)

	return out, nil
}

func sortRuns(runs []RunRecord) {
	slices.SortFunc(runs, func(a, b RunRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
