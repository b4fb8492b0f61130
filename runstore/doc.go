// Package runstore persists solver runs.
//
// A RunRecord captures the model parameters, solver options and the full
// iteration history of one ddp solve under a random UUID. Records are
// serialized with a versioned JSON codec and kept by a Store backend:
//
//   - MemoryStore: process-local map, always available.
//   - SQLiteStore: a single-table SQLite database via modernc.org/sqlite,
//     compiled in with the "sqlite" build tag.
//
// NewStore picks a backend by name ("memory" or "sqlite"); CloseIfSupported
// releases backends that hold resources.
package runstore
