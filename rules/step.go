package rules

import "github.com/sheikhrachel/go-life/model"

// CountNeighbors counts the living cells among the 8 Moore neighbours of
// (x, y). Offsets that fall outside the grid are skipped, so edge cells have
// at most 5 neighbours and corner cells at most 3.
func CountNeighbors(snap model.Snapshot, x, y int) int {
	width, height := snap.Dimensions()

	// Calculate bounds once so out-of-range offsets are never visited
	var (
		minX  = max(0, x-1)
		maxX  = min(width-1, x+1)
		minY  = max(0, y-1)
		maxY  = min(height-1, y+1)
		count = 0
	)
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if snap.Alive(nx, ny) {
				count++
			}
		}
	}
	return count
}

// applyRows writes the next state of rows [startRow, endRow) into next.
// Only snap is read, so every cell sees the same generation.
func applyRows(snap model.Snapshot, next []bool, startRow, endRow int) {
	width, _ := snap.Dimensions()
	for y := startRow; y < endRow; y++ {
		for x := range width {
			next[y*width+x] = ApplyConwayRules(CountNeighbors(snap, x, y), snap.Alive(x, y))
		}
	}
}

// Conway applies B3/S23 to every cell in a single pass.
type Conway struct{}

// Name identifies the strategy.
func (Conway) Name() string { return StrategyConway }

// Apply fills next with the generation after snap.
func (Conway) Apply(snap model.Snapshot, next []bool) {
	_, height := snap.Dimensions()
	applyRows(snap, next, 0, height)
}

// Step is the pure transition: it returns the generation after snap without
// touching any shared state.
func Step(snap model.Snapshot) model.Snapshot {
	return StepWith(Conway{}, snap)
}

// StepWith runs t against snap and returns the result as a new snapshot.
func StepWith(t Transition, snap model.Snapshot) model.Snapshot {
	width, height := snap.Dimensions()
	next := make([]bool, width*height)
	t.Apply(snap, next)

	// dimensions come from a valid snapshot, so this cannot fail
	out, _ := model.NewSnapshot(width, height, snap.Generation()+1, next)
	return out
}
