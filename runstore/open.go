package runstore

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ddpgrowth/config"
)

// Open builds and initializes the backend named by a config store block.
func Open(ctx context.Context, cfg config.Store) (Store, error) {
	store, err := NewStore(cfg.Kind, cfg.Path)
	if err != nil {
		return nil, err
	}
	if err = store.Init(ctx); err != nil {
		_ = CloseIfSupported(store)
		return nil, fmt.Errorf("init %s store: %w", cfg.Kind, err)
	}

	return store, nil
}
