// SPDX-License-Identifier: MIT

package runstore

import (
	"context"
	"fmt"
)

// Store persists run records. Implementations must be safe for concurrent use.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, rec RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]RunRecord, error)
}

// NewStore returns an uninitialized backend by name. "" means "memory".
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes store when the backend holds resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}

	return closer.Close()
}
