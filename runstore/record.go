// SPDX-License-Identifier: MIT

package runstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/katalvlaran/ddpgrowth/growth"
)

// Versions written by EncodeRun and accepted by DecodeRun.
const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var (
	// ErrNotInitialized is returned by backends used before Init.
	ErrNotInitialized = errors.New("runstore: store not initialized")

	// ErrEmptyID is returned when saving or loading a record without an id.
	ErrEmptyID = errors.New("runstore: run id is empty")

	// ErrVersionMismatch is returned when a payload carries an unknown schema or codec version.
	ErrVersionMismatch = errors.New("runstore: record version mismatch")

	// ErrNilResult is returned by NewRecord for a nil result.
	ErrNilResult = errors.New("runstore: result is nil")
)

// RunRecord is one persisted solve.
type RunRecord struct {
	SchemaVersion int           `json:"schema_version"`
	CodecVersion  int           `json:"codec_version"`
	ID            string        `json:"id"`
	Algorithm     string        `json:"algorithm"`
	Params        growth.Params `json:"params"`
	Options       ddp.Options   `json:"options"`
	NumIter       int           `json:"num_iter"`
	Converged     bool          `json:"converged"`
	Elapsed       time.Duration `json:"elapsed_ns"`
	Values        [][]float64   `json:"values"`
	Policies      [][]int       `json:"policies"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewRecord captures res under a fresh UUID.
func NewRecord(res *ddp.Result, p growth.Params, opts ddp.Options) (RunRecord, error) {
	if res == nil {
		return RunRecord{}, ErrNilResult
	}

	return RunRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
		ID:            uuid.NewString(),
		Algorithm:     res.Algo.String(),
		Params:        p,
		Options:       opts,
		NumIter:       res.NumIter,
		Converged:     res.Converged,
		Elapsed:       res.Elapsed,
		Values:        res.Values,
		Policies:      res.Policies,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Result rebuilds the ddp.Result held by r.
func (r RunRecord) Result() (*ddp.Result, error) {
	algo, err := ddp.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", r.ID, err)
	}

	return &ddp.Result{
		Algo:      algo,
		Values:    r.Values,
		Policies:  r.Policies,
		NumIter:   r.NumIter,
		Converged: r.Converged,
		Elapsed:   r.Elapsed,
	}, nil
}

// Save records res in store and returns the saved record.
func Save(ctx context.Context, store Store, res *ddp.Result, p growth.Params, opts ddp.Options) (RunRecord, error) {
	rec, err := NewRecord(res, p, opts)
	if err != nil {
		return RunRecord{}, err
	}
	if err = store.SaveRun(ctx, rec); err != nil {
		return RunRecord{}, fmt.Errorf("save run %s: %w", rec.ID, err)
	}

	return rec, nil
}
