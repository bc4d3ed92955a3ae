// Package coloring - solver options and the shared wall-clock budget.
//
// Options is a plain struct consumed by every exported entry point; zero or
// out-of-range fields select the documented defaults so that both
// DefaultOptions() and a bare Options{} literal behave sensibly.
package coloring

import (
	"context"
	"time"
)

const (
	// DefaultTrials is the constructor restart count of the adaptive search.
	DefaultTrials = 10

	// DefaultMaxRounds caps local-search improvement rounds.
	DefaultMaxRounds = 50

	// DefaultPerturbFraction is the share of vertices randomly recolored
	// when a local-search round brings no improvement.
	DefaultPerturbFraction = 0.2

	// DefaultTimeLimit bounds one solve's wall clock.
	DefaultTimeLimit = 600 * time.Second

	// conflictWeightBoost is added to the weight of every conflict vertex
	// between adaptive trials.
	conflictWeightBoost = 0.1
)

// Options parameterizes Solve and the exported engine entry points.
type Options struct {
	// Algo selects the engine Solve dispatches to.
	Algo Algorithm

	// Seed drives every random choice; 0 selects the fixed default stream
	// so results stay reproducible by default.
	Seed int64

	// TimeLimit bounds one solve's wall clock. Non-positive disables the
	// budget. Loops check the deadline at round boundaries only, so the
	// overrun is at most one round.
	TimeLimit time.Duration

	// Trials is the number of constructor restarts in Search.
	// Non-positive selects DefaultTrials.
	Trials int

	// MaxRounds caps Refine's improvement rounds.
	// Non-positive selects DefaultMaxRounds.
	MaxRounds int

	// PerturbFraction is the share of vertices perturbed on a stagnant
	// round. Values outside (0, 1] select DefaultPerturbFraction.
	PerturbFraction float64

	// Ctx allows cooperative cancellation, checked at the same round
	// boundaries as the deadline. Nil means context.Background().
	Ctx context.Context
}

// DefaultOptions returns the stock configuration: the probabilistic
// engine, 10 trials, 50 local-search rounds, 20% perturbation, a 600 s
// budget, and the fixed default random stream.
func DefaultOptions() Options {
	return Options{
		Algo:            AlgoProbabilistic,
		Seed:            0,
		TimeLimit:       DefaultTimeLimit,
		Trials:          DefaultTrials,
		MaxRounds:       DefaultMaxRounds,
		PerturbFraction: DefaultPerturbFraction,
		Ctx:             context.Background(),
	}
}

// trials returns the effective restart count.
func (o Options) trials() int {
	if o.Trials <= 0 {
		return DefaultTrials
	}

	return o.Trials
}

// maxRounds returns the effective local-search round cap.
func (o Options) maxRounds() int {
	if o.MaxRounds <= 0 {
		return DefaultMaxRounds
	}

	return o.MaxRounds
}

// perturbFraction returns the effective perturbation share.
func (o Options) perturbFraction() float64 {
	if o.PerturbFraction <= 0 || o.PerturbFraction > 1 {
		return DefaultPerturbFraction
	}

	return o.PerturbFraction
}

// budget tracks the wall-clock deadline and context of one solve.
// Engines consult expired() at round boundaries: once per DSATUR
// assignment, per constructor pass, per trial, per local-search round.
type budget struct {
	ctx      context.Context
	deadline time.Time
	bounded  bool
}

// newBudget derives the budget of one solve from its options.
// The deadline is anchored at the moment of the call.
func newBudget(opts Options) *budget {
	b := &budget{ctx: opts.Ctx}
	if opts.TimeLimit > 0 {
		b.bounded = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	return b
}

// expired reports whether the deadline passed or the context was canceled.
func (b *budget) expired() bool {
	if b.ctx != nil {
		select {
		case <-b.ctx.Done():
			return true
		default:
		}
	}

	return b.bounded && time.Now().After(b.deadline)
}
