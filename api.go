package gridpath

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/pdrpinto/gridpath/grid"
)

// Result contains the outcome of a search.
type Result struct {
	Path          []grid.Position
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Movement grid.Movement
	// Heuristic defaults to Manhattan for orthogonal movement and Octile
	// when diagonals are allowed.
	Heuristic Heuristic
	// Weight scales the heuristic. Values above 1 trade optimality for speed.
	Weight float64
	// MaxExpansions caps the number of nodes popped from the frontier. Zero
	// means no cap.
	MaxExpansions int
	// Timeout bounds the wall-clock time of one search. Zero means none.
	Timeout time.Duration
	// NumberOfWorkers bounds FindPaths concurrency.
	NumberOfWorkers int
	Logger          *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMovement sets the full diagonal rule set.
func WithMovement(movement grid.Movement) Option {
	return func(options *Options) { options.Movement = movement }
}

// WithDiagonal enables or disables diagonal steps.
func WithDiagonal(allow bool) Option {
	return func(options *Options) { options.Movement.AllowDiagonal = allow }
}

// WithCorners sets the corner-cutting policy used for diagonal steps.
func WithCorners(policy grid.CornerPolicy) Option {
	return func(options *Options) { options.Movement.Corners = policy }
}

// WithHeuristic replaces the default heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWeight scales the heuristic.
func WithWeight(weight float64) Option {
	return func(options *Options) { options.Weight = weight }
}

// WithMaxExpansions aborts a search after n expansions.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithTimeout aborts a search that runs longer than d.
func WithTimeout(d time.Duration) Option {
	return func(options *Options) { options.Timeout = d }
}

// WithWorkers specifies how many goroutines FindPaths runs queries on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger routes search diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		Weight:          1,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		if searchOptions.Movement.AllowDiagonal {
			searchOptions.Heuristic = Octile
		} else {
			searchOptions.Heuristic = Manhattan
		}
	}
	if searchOptions.Weight <= 0 {
		searchOptions.Weight = 1
	}
	if searchOptions.NumberOfWorkers <= 0 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

// FindPath runs A* from start to goal over g.
//
// An out-of-bounds or blocked endpoint fails with a *PositionError before
// any expansion. A disconnected goal yields ErrNoPath. A search that is
// stopped early yields ErrSearchAborted. The returned Result always carries
// the expansion count.
func FindPath(
	ctx context.Context,
	g grid.Grid,
	start grid.Position,
	goal grid.Position,
	options ...Option,
) (Result, error) {
	searchOptions := buildOptions(options)
	return findPath(ctx, g, start, goal, searchOptions)
}

func findPath(ctx context.Context, g grid.Grid, start, goal grid.Position, searchOptions Options) (Result, error) {
	if searchOptions.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, searchOptions.Timeout)
		defer cancel()
	}

	s, err := newSearch(g, start, goal, searchOptions)
	if err != nil {
		return Result{}, err
	}
	defer s.release()

	for {
		outcome, err := s.step(ctx)
		if err != nil {
			return s.result(), err
		}
		if outcome != stepContinue {
			return s.finish(outcome)
		}
	}
}
