// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/katalvlaran/ddpgrowth/ctxlog"
	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/katalvlaran/ddpgrowth/growth"
)

// decode maps the HCL body onto Config, filling defaults and validating.
func decode(ctx context.Context, body hcl.Body, filename string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	var raw hclFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, filename, diags)
	}
	if raw.Model == nil {
		return nil, fmt.Errorf("%w: %s: missing model block", ErrInvalidConfig, filename)
	}

	cfg := &Config{
		Model:   modelParams(raw.Model),
		Solver:  ddp.DefaultOptions(),
		Logging: Logging{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Store:   Store{Kind: DefaultStoreKind},
	}

	if s := raw.Solver; s != nil {
		algo, err := ddp.ParseAlgorithm(s.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: solver: %w", ErrInvalidConfig, filename, err)
		}
		cfg.Solver.Algo = algo
		if s.Crit != nil {
			cfg.Solver.Crit = *s.Crit
		}
		if s.K != nil {
			cfg.Solver.K = *s.K
		}
		if s.MaxIter != nil {
			cfg.Solver.MaxIter = *s.MaxIter
		}
		if s.Seed != nil {
			cfg.Solver.Seed = *s.Seed
		}
		if s.InfeasibleAsZero != nil {
			cfg.Solver.InfeasibleAsZero = *s.InfeasibleAsZero
		}
	}

	if l := raw.Logging; l != nil {
		if l.Level != nil {
			cfg.Logging.Level = *l.Level
		}
		if l.Format != nil {
			cfg.Logging.Format = *l.Format
		}
	}

	if st := raw.Store; st != nil {
		cfg.Store.Kind = st.Kind
		if st.Path != nil {
			cfg.Store.Path = *st.Path
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	logger.Debug("config loaded",
		"file", filename,
		"algo", cfg.Solver.Algo.String(),
		"num_states", cfg.Model.NumStates,
		"store", cfg.Store.Kind,
	)

	return cfg, nil
}

func modelParams(m *hclModel) growth.Params {
	p := growth.Params{
		Alpha:     m.Alpha,
		Beta:      m.Beta,
		Delta:     m.Delta,
		Sigma:     m.Sigma,
		NumStates: m.NumStates,
		Dev:       growth.DefaultDev,
	}
	if m.Dev != nil {
		p.Dev = *m.Dev
	}

	return p
}

// Validate checks the model, the solver options and the enumerated strings.
func (c *Config) Validate() error {
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("%w: model: %w", ErrInvalidConfig, err)
	}
	if err := c.Solver.Validate(); err != nil {
		return fmt.Errorf("%w: solver: %w", ErrInvalidConfig, err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging: unknown level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging: unknown format %q", ErrInvalidConfig, c.Logging.Format)
	}
	switch c.Store.Kind {
	case "memory":
	case "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store: sqlite needs a path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: store: unknown kind %q", ErrInvalidConfig, c.Store.Kind)
	}

	return nil
}
