package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_RejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestNewGrid_StartsDead(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	w, h := g.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Zero(t, g.Population())
	assert.Zero(t, g.Generation())
}

func TestGrid_GetSetBounds(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	require.NoError(t, g.Set(2, 1, true))
	alive, err := g.Get(2, 1)
	require.NoError(t, err)
	assert.True(t, alive)

	// only the one cell changed
	assert.Equal(t, 1, g.Population())

	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, err = g.Get(c.X, c.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "get %v", c)
		assert.ErrorIs(t, g.Set(c.X, c.Y, true), ErrOutOfBounds, "set %v", c)
	}
}

func TestGrid_Seed(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	require.NoError(t, g.Seed([]Coord{{2, 1}, {2, 2}, {2, 3}}))
	assert.Equal(t, []Coord{{2, 1}, {2, 2}, {2, 3}}, g.Snapshot().AliveCells())

	assert.ErrorIs(t, g.Seed([]Coord{{0, 0}}), ErrAlreadySeeded)
}

func TestGrid_SeedOutOfRangeLeavesGridUntouched(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	err = g.Seed([]Coord{{1, 1}, {5, 0}})
	assert.ErrorIs(t, err, ErrInvalidSeed)
	assert.Zero(t, g.Population())

	// a failed seed does not consume the one allowed seed
	require.NoError(t, g.Seed([]Coord{{1, 1}}))
}

func TestGrid_SnapshotIsACopy(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, true))

	snap := g.Snapshot()
	require.NoError(t, g.Set(1, 1, false))

	alive, err := snap.Get(1, 1)
	require.NoError(t, err)
	assert.True(t, alive)
}

func TestGrid_AdvanceCommitsAndCounts(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Seed([]Coord{{0, 0}}))

	gen := g.Advance(func(snap Snapshot, next []bool) {
		assert.Equal(t, uint64(0), snap.Generation())
		assert.Len(t, next, 4)
		for i := range next {
			next[i] = !snap.Alive(i%2, i/2)
		}
	})

	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, uint64(1), g.Generation())
	assert.Equal(t, []Coord{{1, 0}, {0, 1}, {1, 1}}, g.Snapshot().AliveCells())
}

func TestGrid_AdvanceHandsOutClearedBuffers(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	for range 5 {
		g.Advance(func(_ Snapshot, next []bool) {
			for i := range next {
				assert.False(t, next[i])
				next[i] = false
			}
			next[4] = true
		})
	}
	assert.Equal(t, 1, g.Population())
}

func TestGrid_ReadSeesOneGeneration(t *testing.T) {
	g, err := NewGrid(16, 16)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		stop = make(chan struct{})
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				g.Read(func(v View) {
					// generation parity decides every cell
					want := v.Generation()%2 == 1
					w, h := v.Dimensions()
					for y := range h {
						for x := range w {
							if v.Alive(x, y) != want {
								t.Errorf("gen %d: cell (%d,%d) mixed", v.Generation(), x, y)
								return
							}
						}
					}
				})
			}
		}()
	}

	for range 200 {
		g.Advance(func(snap Snapshot, next []bool) {
			for i := range next {
				next[i] = !snap.Alive(0, 0)
			}
		})
	}
	close(stop)
	wg.Wait()
}
