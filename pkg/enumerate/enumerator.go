// Package enumerate walks every Boolean function of a given width and collects one canonical
// representative per equivalence class.
package enumerate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/limaJavier/npnclass/pkg/npn"
	"github.com/limaJavier/npnclass/pkg/selfdual"
	"github.com/limaJavier/npnclass/pkg/truthtable"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSpaceTooLarge = errors.New("function space too large")
	ErrUnknownMode   = errors.New("unknown enumeration mode")
)

// Widest space RunParallel can split: 2^(2^5) functions still fit a uint64 counter
const MaxParallelVars = 5

type Mode int

const (
	ModeNPN Mode = iota
	ModeP
	// Self-dual functions are NPN-canonicalized at width n, every other one is lifted to
	// a self-dual function of n+1 variables and canonicalized there
	ModeSelfDual
	// Only the NPN representatives of width n are enumerated, and each one is lifted to width n+1
	ModeSelfDualFast
)

var modeNames = map[Mode]string{
	ModeNPN:          "npn",
	ModeP:            "p",
	ModeSelfDual:     "selfdual",
	ModeSelfDualFast: "selfdual-fast",
}

func (mode Mode) String() string {
	if name, ok := modeNames[mode]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

func ParseMode(name string) (Mode, error) {
	mode, ok := lo.FindKey(modeNames, strings.ToLower(name))
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMode)
	}
	return mode, nil
}

// Widest representative collected in the given mode
func (mode Mode) RepresentativeVars(numVars int) int {
	if mode == ModeSelfDual || mode == ModeSelfDualFast {
		return numVars + 1
	}
	return numVars
}

type Option func(*Enumerator)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Enumerator) {
		e.logger = logger
	}
}

// WithProgressEvery logs progress each time that many functions have been visited; 0 disables it
func WithProgressEvery(every uint64) Option {
	return func(e *Enumerator) {
		e.progressEvery = every
	}
}

type Enumerator struct {
	numVars       int
	mode          Mode
	canonicalizer *npn.Canonicalizer
	lifted        *npn.Canonicalizer // width n+1, self-dual modes only
	logger        logrus.FieldLogger
	progressEvery uint64
}

func New(numVars int, mode Mode, options ...Option) (*Enumerator, error) {
	if _, ok := modeNames[mode]; !ok {
		return nil, fmt.Errorf("%v: %w", mode, ErrUnknownMode)
	}

	canonicalMode := npn.ModeNPN
	if mode == ModeP {
		canonicalMode = npn.ModeP
	}
	canonicalizer, err := npn.NewCanonicalizer(numVars, canonicalMode)
	if err != nil {
		return nil, fmt.Errorf("cannot enumerate %d variables in %v mode: %w", numVars, mode, err)
	}

	enumerator := &Enumerator{
		numVars:       numVars,
		mode:          mode,
		canonicalizer: canonicalizer,
		logger:        logrus.StandardLogger(),
	}
	if mode.RepresentativeVars(numVars) > numVars {
		enumerator.lifted, err = npn.NewCanonicalizer(numVars+1, npn.ModeNPN)
		if err != nil {
			return nil, fmt.Errorf("cannot enumerate %d variables in %v mode: %w", numVars, mode, err)
		}
	}
	for _, option := range options {
		option(enumerator)
	}
	return enumerator, nil
}

func (e *Enumerator) NumVars() int {
	return e.numVars
}

func (e *Enumerator) Mode() Mode {
	return e.mode
}

// Run enumerates sequentially. On cancellation it returns the classes found so far together with ctx.Err().
func (e *Enumerator) Run(ctx context.Context) (*ClassSet, error) {
	if e.mode == ModeSelfDualFast {
		return e.runFast(ctx, func(base *Enumerator) (*ClassSet, error) { return base.Run(ctx) })
	}

	cursor, err := NewCursor(e.numVars)
	if err != nil {
		return nil, err
	}
	classes := NewClassSet()
	logger := e.logger.WithFields(logrus.Fields{"vars": e.numVars, "mode": e.mode})
	if err := e.walk(ctx, cursor, 0, classes, logger); err != nil {
		return classes, err
	}

	logger.Infof("enumerated %d functions into %d classes", cursor.Steps(), classes.Len())
	return classes, nil
}

// RunParallel splits the numeric range of functions into contiguous slices, one per worker, each
// collecting into a private ClassSet; the sets are unioned at the end. workers <= 0 uses GOMAXPROCS.
func (e *Enumerator) RunParallel(ctx context.Context, workers int) (*ClassSet, error) {
	if e.numVars > MaxParallelVars {
		return nil, fmt.Errorf("parallel enumeration of %d variables (limit %d): %w", e.numVars, MaxParallelVars, ErrSpaceTooLarge)
	}
	if e.mode == ModeSelfDualFast {
		return e.runFast(ctx, func(base *Enumerator) (*ClassSet, error) { return base.RunParallel(ctx, workers) })
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	total := uint64(1) << (uint64(1) << e.numVars)
	chunk := (total + uint64(workers) - 1) / uint64(workers)
	partials := make([]*ClassSet, workers)

	group, groupCtx := errgroup.WithContext(ctx)
	for worker := range workers {
		start := uint64(worker) * chunk
		if start >= total {
			partials[worker] = NewClassSet()
			continue
		}
		count := min(chunk, total-start)

		group.Go(func() error {
			table, err := truthtable.FromUint64(e.numVars, start)
			if err != nil {
				return err
			}
			partials[worker] = NewClassSet()
			logger := e.logger.WithFields(logrus.Fields{"vars": e.numVars, "mode": e.mode, "worker": worker})
			return e.walk(groupCtx, NewCursorAt(table), count, partials[worker], logger)
		})
	}
	err := group.Wait()

	classes := NewClassSet()
	for _, partial := range partials {
		if partial != nil {
			classes.Union(partial)
		}
	}
	if err != nil {
		return classes, err
	}

	e.logger.WithFields(logrus.Fields{"vars": e.numVars, "mode": e.mode, "workers": workers}).
		Infof("enumerated %d functions into %d classes", total, classes.Len())
	return classes, nil
}

// walk classifies functions from the cursor position until it is done or, if limit > 0, limit functions were visited
func (e *Enumerator) walk(ctx context.Context, cursor *Cursor, limit uint64, classes *ClassSet, logger logrus.FieldLogger) error {
	for !cursor.Done() && (limit == 0 || cursor.Steps() < limit) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		representative, err := e.Classify(cursor.table)
		if err != nil {
			return err
		}
		classes.Insert(representative)
		cursor.Advance()

		if e.progressEvery > 0 && cursor.Steps()%e.progressEvery == 0 {
			logger.WithField("classes", classes.Len()).Debugf("visited %d functions", cursor.Steps())
		}
	}
	return nil
}

// Classify returns the representative under which the function is counted in this enumerator's mode
func (e *Enumerator) Classify(t truthtable.TruthTable) (truthtable.TruthTable, error) {
	if t.NumVars() != e.numVars {
		return nil, fmt.Errorf("%d-variable enumerator got %d variables: %w", e.numVars, t.NumVars(), truthtable.ErrDimensionMismatch)
	}

	canonicalizer := e.canonicalizer
	if e.mode == ModeSelfDualFast || (e.mode == ModeSelfDual && !selfdual.IsSelfDual(t)) {
		lifted, err := selfdual.Lift(t)
		if err != nil {
			return nil, err
		}
		t, canonicalizer = lifted, e.lifted
	}

	result, err := canonicalizer.Canonicalize(t)
	if err != nil {
		return nil, err
	}
	return result.Representative, nil
}

// runFast collects the NPN classes of width n with run, then lifts only their representatives.
// Lifting commutes with NPN transforms up to an NPN transform of width n+1, so no lifted class is lost.
func (e *Enumerator) runFast(ctx context.Context, run func(*Enumerator) (*ClassSet, error)) (*ClassSet, error) {
	base, err := New(e.numVars, ModeNPN, WithLogger(e.logger), WithProgressEvery(e.progressEvery))
	if err != nil {
		return nil, err
	}
	npnClasses, err := run(base)
	if err != nil {
		return NewClassSet(), fmt.Errorf("cannot collect %d-variable NPN classes: %w", e.numVars, err)
	}

	classes := NewClassSet()
	for _, representative := range npnClasses.Representatives() {
		select {
		case <-ctx.Done():
			return classes, ctx.Err()
		default:
		}

		lifted, err := e.Classify(representative)
		if err != nil {
			return nil, err
		}
		classes.Insert(lifted)
	}

	e.logger.WithFields(logrus.Fields{"vars": e.numVars, "mode": e.mode}).
		Infof("lifted %d NPN classes into %d self-dual classes", npnClasses.Len(), classes.Len())
	return classes, nil
}
