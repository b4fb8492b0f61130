// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/ddpgrowth/ctxlog"
	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/katalvlaran/ddpgrowth/growth"
)

// ErrInvalidConfig wraps every parse, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults for the optional blocks.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultStoreKind = "memory"
)

// Config is a decoded and validated configuration file.
type Config struct {
	Model   growth.Params
	Solver  ddp.Options
	Logging Logging
	Store   Store
}

// Logging selects the slog handler built by Config.Logger.
type Logging struct {
	Level  string
	Format string
}

// Store names the result backend and its location.
type Store struct {
	Kind string
	Path string
}

// Logger returns a logger writing to w as configured by the logging block.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return ctxlog.New(c.Logging.Level, c.Logging.Format, w)
}

// hclFile mirrors the top-level blocks of a configuration file.
type hclFile struct {
	Model   *hclModel   `hcl:"model,block"`
	Solver  *hclSolver  `hcl:"solver,block"`
	Logging *hclLogging `hcl:"logging,block"`
	Store   *hclStore   `hcl:"store,block"`
}

type hclModel struct {
	Alpha     float64  `hcl:"alpha"`
	Beta      float64  `hcl:"beta"`
	Delta     float64  `hcl:"delta"`
	Sigma     float64  `hcl:"sigma"`
	NumStates int      `hcl:"num_states"`
	Dev       *float64 `hcl:"dev,optional"`
}

type hclSolver struct {
	Algorithm        string   `hcl:"algorithm"`
	Crit             *float64 `hcl:"crit,optional"`
	K                *int     `hcl:"k,optional"`
	MaxIter          *int     `hcl:"max_iter,optional"`
	Seed             *int64   `hcl:"seed,optional"`
	InfeasibleAsZero *bool    `hcl:"infeasible_as_zero,optional"`
}

type hclLogging struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclStore struct {
	Kind string  `hcl:"kind"`
	Path *string `hcl:"path,optional"`
}

// Load parses and validates the HCL file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, diags)
	}

	return decode(ctx, file.Body, path)
}

// Parse is Load for in-memory source; filename only labels diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, filename, diags)
	}

	return decode(ctx, file.Body, filename)
}
