// Command ddpgrowth solves the discretized growth model described by an HCL
// configuration file, stores the run and compares the resulting consumption
// policy with the linearized reference solution.
//
// Usage:
//
//	ddpgrowth [options] CONFIG_PATH
//	ddpgrowth -list CONFIG_PATH   (store kind "sqlite", built with -tags sqlite)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/ddpgrowth/config"
	"github.com/katalvlaran/ddpgrowth/ctxlog"
	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/katalvlaran/ddpgrowth/growth"
	"github.com/katalvlaran/ddpgrowth/linear"
	"github.com/katalvlaran/ddpgrowth/runstore"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	logLevel   string
	logFormat  string
	algorithm  string
	list       bool
}

func parseFlags(args []string, out io.Writer) (*flags, bool, error) {
	fs := flag.NewFlagSet("ddpgrowth", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
ddpgrowth - discrete dynamic programming for the one-sector growth model.

Usage:
  ddpgrowth [options] CONFIG_PATH

Options:
`)
		fs.PrintDefaults()
	}

	f := &flags{}
	fs.StringVar(&f.configPath, "config", "", "Path to the HCL configuration file.")
	fs.StringVar(&f.logLevel, "log-level", "", "Override the configured log level: debug, info, warn, error.")
	fs.StringVar(&f.logFormat, "log-format", "", "Override the configured log format: text or json.")
	fs.StringVar(&f.algorithm, "algo", "", "Override the configured solver: value, policy or modified.")
	fs.BoolVar(&f.list, "list", false, "List stored runs instead of solving (sqlite store only).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if f.configPath == "" && fs.NArg() > 0 {
		f.configPath = fs.Arg(0)
	}
	if f.configPath == "" {
		fs.Usage()
		return nil, true, nil
	}

	return f, false, nil
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	f, shouldExit, err := parseFlags(args, outW)
	if err != nil || shouldExit {
		return err
	}

	cfg, err := config.Load(ctx, f.configPath)
	if err != nil {
		return err
	}
	if err = applyOverrides(cfg, f); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if f.list && cfg.Store.Kind == "memory" {
		return &ExitError{Code: 2, Message: "-list needs a persistent store; set store { kind = \"sqlite\" } in the config"}
	}
	logger := cfg.Logger(errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	store, err := runstore.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := runstore.CloseIfSupported(store); cerr != nil {
			logger.Warn("closing run store failed", "error", cerr)
		}
	}()

	if f.list {
		return listRuns(ctx, outW, store)
	}

	return solve(ctx, outW, cfg, store)
}

func applyOverrides(cfg *config.Config, f *flags) error {
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}
	if f.algorithm != "" {
		algo, err := ddp.ParseAlgorithm(f.algorithm)
		if err != nil {
			return err
		}
		cfg.Solver.Algo = algo
	}

	return cfg.Validate()
}

func solve(ctx context.Context, outW io.Writer, cfg *config.Config, store runstore.Store) error {
	grid, err := growth.BuildGrid(cfg.Model)
	if err != nil {
		return err
	}
	prob, err := ddp.ProblemFromGrid(grid, cfg.Model.Beta)
	if err != nil {
		return err
	}
	res, err := ddp.Solve(ctx, prob, cfg.Solver)
	if err != nil {
		return err
	}
	rec, err := runstore.Save(ctx, store, res, cfg.Model, cfg.Solver)
	if err != nil {
		return err
	}

	gap, err := linearGap(grid, res, cfg.Model)
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "run:       %s\n", rec.ID)
	fmt.Fprintf(outW, "algorithm: %s\n", res.Algo)
	fmt.Fprintf(outW, "states:    %d\n", grid.Size())
	fmt.Fprintf(outW, "num_iter:  %d\n", res.NumIter)
	fmt.Fprintf(outW, "converged: %t\n", res.Converged)
	fmt.Fprintf(outW, "linear_gap_at_steady_state: %.6g\n", gap)

	return nil
}

// linearGap is |c_ddp − c_linear| at the grid point closest to the capital steady state.
func linearGap(grid *growth.Grid, res *ddp.Result, p growth.Params) (float64, error) {
	_, policy := res.Final()
	if policy == nil {
		return math.NaN(), nil
	}
	kss, _ := p.SteadyState()
	mid := 0
	for s, k := range grid.Capital {
		if math.Abs(k-kss) < math.Abs(grid.Capital[mid]-kss) {
			mid = s
		}
	}

	cDDP, err := grid.Consumption.At(policy[mid], mid)
	if err != nil {
		return 0, err
	}
	cLin, err := linear.ConsumptionPolicy([]float64{grid.Capital[mid]}, p)
	if err != nil {
		return 0, err
	}

	return math.Abs(cDDP - cLin[0]), nil
}

func listRuns(ctx context.Context, outW io.Writer, store runstore.Store) error {
	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(outW, "%s  %-8s  states=%d  num_iter=%d  converged=%t  %s\n",
			r.ID, r.Algorithm, r.Params.NumStates, r.NumIter, r.Converged, r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}

	return nil
}
