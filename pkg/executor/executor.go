package executor

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/ren/pkg/errors"
	"github.com/arthur-debert/ren/pkg/filesystem"
	"github.com/arthur-debert/ren/pkg/logging"
	"github.com/arthur-debert/ren/pkg/planner"
	"github.com/arthur-debert/ren/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
	// Out receives the per-pair progress lines
	Out io.Writer
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor applies an accepted rename plan, pair by pair, in plan order
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	out    io.Writer
	fs     types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		out:    out,
		fs:     fs,
	}
}

// Result records the outcome of a single pair
type Result struct {
	Pair    planner.RenamePair
	Success bool
	Skipped bool
	Error   error
}

// Execute processes every pair of the plan and returns their results.
// A failed move is reported and execution continues with the remaining
// pairs: planning already guaranteed no further collisions, so later
// moves stay valid regardless of earlier failures.
func (e *Executor) Execute(plan *planner.Plan) []Result {
	results := make([]Result, 0, plan.Len())

	for _, pair := range plan.Pairs() {
		result := e.executePair(pair)
		results = append(results, result)
	}

	return results
}

// executePair performs (or echoes) a single move and returns its result
func (e *Executor) executePair(pair planner.RenamePair) Result {
	e.logger.Debug().
		Str("old", pair.Old).
		Str("new", pair.New).
		Bool("dry_run", e.dryRun).
		Msg("Executing rename")

	if pair.Unchanged() {
		fmt.Fprintf(e.out, "  = %s (unchanged)\n", pair.Old)
		return Result{Pair: pair, Success: true, Skipped: true}
	}

	if e.dryRun {
		fmt.Fprintf(e.out, "  %s -> %s\n", pair.Old, pair.New)
		return Result{Pair: pair, Success: true, Skipped: true}
	}

	if err := e.fs.Rename(pair.Old, pair.New); err != nil {
		e.logger.Error().
			Err(err).
			Str("old", pair.Old).
			Str("new", pair.New).
			Msg("Rename failed")
		fmt.Fprintf(e.out, "  ! %s -> %s: %v\n", pair.Old, pair.New, err)
		return Result{
			Pair:  pair,
			Error: errors.Wrapf(err, errors.ErrRename, "cannot rename %q to %q", pair.Old, pair.New),
		}
	}

	fmt.Fprintf(e.out, "  ✓ %s -> %s\n", pair.Old, pair.New)
	return Result{Pair: pair, Success: true}
}
