package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Board is the read-only surface shared by snapshots and locked views.
type Board interface {
	Dimensions() (width, height int)
	Generation() uint64
	Get(x, y int) (bool, error)
	Alive(x, y int) bool
}

// board is a row-major cell buffer indexed by y*width+x.
type board struct {
	width      int
	height     int
	cells      []bool
	generation uint64
}

func (b board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Dimensions returns the width and height of the board
func (b board) Dimensions() (int, int) {
	return b.width, b.height
}

// Generation returns the generation this board holds.
func (b board) Generation() uint64 {
	return b.generation
}

// Get returns the state of a cell, failing with ErrOutOfBounds outside the board.
func (b board) Get(x, y int) (bool, error) {
	if !b.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "get (%d,%d) on %dx%d", x, y, b.width, b.height)
	}
	return b.cells[y*b.width+x], nil
}

// Alive reports whether (x, y) is alive. Cells outside the board are never alive.
func (b board) Alive(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cells[y*b.width+x]
}

// Population returns the total number of living cells
func (b board) Population() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// AliveCells lists the living cells in row-major order.
func (b board) AliveCells() []Coord {
	var alive []Coord
	for y := range b.height {
		for x := range b.width {
			if b.cells[y*b.width+x] {
				alive = append(alive, Coord{X: x, Y: y})
			}
		}
	}
	return alive
}

// Hash returns an MD5 fingerprint of the cell state.
func (b board) Hash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, alive := range b.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Snapshot is an immutable copy of the full grid state at one generation.
type Snapshot struct {
	board
}

// NewSnapshot copies cells into a new snapshot. len(cells) must equal width*height.
func NewSnapshot(width, height int, generation uint64, cells []bool) (Snapshot, error) {
	if width <= 0 || height <= 0 {
		return Snapshot{}, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if len(cells) != width*height {
		return Snapshot{}, errors.Errorf("snapshot: got %d cells for %dx%d", len(cells), width, height)
	}
	return Snapshot{board{
		width:      width,
		height:     height,
		cells:      append([]bool(nil), cells...),
		generation: generation,
	}}, nil
}

// SnapshotFromCoords builds a snapshot with exactly the given cells alive.
func SnapshotFromCoords(width, height int, alive []Coord) (Snapshot, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return Snapshot{}, err
	}
	if err = g.Seed(alive); err != nil {
		return Snapshot{}, err
	}
	return g.Snapshot(), nil
}

// Size returns width*height.
func (s Snapshot) Size() int {
	return len(s.cells)
}

// CopyInto copies the row-major cell state into dst, which must hold Size() cells.
func (s Snapshot) CopyInto(dst []bool) {
	copy(dst, s.cells)
}

// Equal reports whether two snapshots have the same dimensions and cells.
// Generations are not compared.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.width != o.width || s.height != o.height {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// View is a borrowed, lock-held window onto the live grid. It is only valid
// inside the callback passed to Grid.Read.
type View struct {
	board
}
