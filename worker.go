package gridpath

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/gridpath/grid"
)

// Query is one start/goal pair submitted to FindPaths.
type Query struct {
	Start grid.Position
	Goal  grid.Position
}

// Outcome is the answer to one Query.
type Outcome struct {
	Query  Query
	Result Result
	Err    error
}

// FindPaths runs every query against g on a bounded pool of goroutines (see
// WithWorkers). Each query gets its own search state, so g is only read and
// must not be mutated until FindPaths returns. Outcomes are in query order.
// The returned error is non-nil only when ctx ended before all queries ran.
func FindPaths(ctx context.Context, g grid.Grid, queries []Query, options ...Option) ([]Outcome, error) {
	searchOptions := buildOptions(options)
	outcomes := make([]Outcome, len(queries))

	var group errgroup.Group
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		outcomes[i].Query = query
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = fmt.Errorf("%w: %w", ErrSearchAborted, err)
			continue
		}
		group.Go(func() error {
			result, err := findPath(ctx, g, query.Start, query.Goal, searchOptions)
			outcomes[i].Result = result
			outcomes[i].Err = err
			return nil
		})
	}
	_ = group.Wait()

	searchOptions.Logger.Debug("batch search finished",
		"queries", len(queries),
		"workers", searchOptions.NumberOfWorkers,
	)
	return outcomes, ctx.Err()
}
