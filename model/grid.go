package model

import (
	"sync"

	"github.com/pkg/errors"
)

// Grid represents the bounded game board shared between the simulation
// worker and the renderer. A single RWMutex covers every cell.
type Grid struct {
	mu sync.RWMutex

	width      int
	height     int
	cells      []bool
	generation uint64
	seeded     bool

	pool *GridPool
}

// NewGrid creates a grid with the specified dimensions and every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		pool:   NewGridPool(),
	}, nil
}

// Dimensions returns the width and height of the grid
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	idx, ok := g.index(x, y)
	if !ok {
		return false, errors.Wrapf(ErrOutOfBounds, "get (%d,%d) on %dx%d", x, y, g.width, g.height)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[idx], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	idx, ok := g.index(x, y)
	if !ok {
		return errors.Wrapf(ErrOutOfBounds, "set (%d,%d) on %dx%d", x, y, g.width, g.height)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[idx] = alive
	return nil
}

// Seed marks each coordinate alive. Every coordinate is validated before any
// cell changes, so a failed seed leaves the grid untouched. Seed may only
// succeed once.
func (g *Grid) Seed(coords []Coord) error {
	for _, c := range coords {
		if _, ok := g.index(c.X, c.Y); !ok {
			return errors.Wrapf(ErrInvalidSeed, "%v outside %dx%d", c, g.width, g.height)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seeded {
		return ErrAlreadySeeded
	}
	for _, c := range coords {
		g.cells[c.Y*g.width+c.X] = true
	}
	g.seeded = true
	return nil
}

// Generation returns the number of transitions committed so far.
func (g *Grid) Generation() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

// Population returns the number of living cells.
func (g *Grid) Population() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.boardLocked(g.cells).Population()
}

// Snapshot returns an immutable copy of the current state.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Snapshot{g.boardLocked(append([]bool(nil), g.cells...))}
}

// Read runs fn with the shared hold taken. Every cell fn observes belongs to
// the same generation. fn must not retain v or call back into g's writers.
func (g *Grid) Read(fn func(v View)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(View{g.boardLocked(g.cells)})
}

// Advance takes the exclusive hold, hands fn a snapshot of the current state
// and a cleared buffer of the same size, commits the buffer as the next
// generation and releases the hold. The snapshot and buffer are only valid
// for the duration of fn. It returns the new generation number.
func (g *Grid) Advance(fn func(snap Snapshot, next []bool)) uint64 {
	var (
		snapBuf = g.pool.Get(len(g.cells))
		next    = g.pool.Get(len(g.cells))
	)
	defer g.pool.Put(snapBuf)
	defer g.pool.Put(next)

	g.mu.Lock()
	defer g.mu.Unlock()

	copy(snapBuf, g.cells)
	fn(Snapshot{g.boardLocked(snapBuf)}, next)
	copy(g.cells, next)
	g.generation++
	return g.generation
}

func (g *Grid) boardLocked(cells []bool) board {
	return board{
		width:      g.width,
		height:     g.height,
		cells:      cells,
		generation: g.generation,
	}
}
