package rules

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

// Parallel applies B3/S23 in row bands spread across goroutines. Bands write
// disjoint rows of next and only read snap, so the result matches Conway.
// A band fails only when next is shorter than the snapshot, which Apply
// reports by panicking.
type Parallel struct {
	// Workers caps the number of bands. Zero means runtime.NumCPU().
	Workers int
}

// Name identifies the strategy.
func (Parallel) Name() string { return StrategyParallel }

// Apply fills next with the generation after snap.
func (p Parallel) Apply(snap model.Snapshot, next []bool) {
	width, height := snap.Dimensions()

	numWorkers := p.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)
	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			if need := endRow * width; len(next) < need {
				return errors.Errorf("rows %d-%d need %d cells, next holds %d", startRow, endRow, need, len(next))
			}
			applyRows(snap, next, startRow, endRow)
			return nil
		})
	}

	// a short buffer breaks the Transition contract; there is no partial result to keep
	if err := eg.Wait(); err != nil {
		panic(errors.Wrap(err, "[Parallel.Apply]"))
	}
}
