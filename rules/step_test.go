package rules

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
)

func snapshotOf(t *testing.T, w, h int, alive ...model.Coord) model.Snapshot {
	t.Helper()
	snap, err := model.SnapshotFromCoords(w, h, alive)
	require.NoError(t, err)
	return snap
}

func stepN(snap model.Snapshot, n int) model.Snapshot {
	for range n {
		snap = Step(snap)
	}
	return snap
}

// ring lists the 8 neighbours of (1,1) in a 3x3 grid.
var ring = []model.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 3, ApplyConwayRules(n, false), "dead with %d", n)
		assert.Equal(t, n == 2 || n == 3, ApplyConwayRules(n, true), "alive with %d", n)
	}
}

func TestStep_CentreCellForEveryNeighbourCount(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			t.Run(fmt.Sprintf("n=%d/alive=%v", n, alive), func(t *testing.T) {
				cells := append([]model.Coord(nil), ring[:n]...)
				if alive {
					cells = append(cells, model.Coord{X: 1, Y: 1})
				}
				snap := snapshotOf(t, 3, 3, cells...)
				require.Equal(t, n, CountNeighbors(snap, 1, 1))

				want := n == 3 || (alive && n == 2)
				assert.Equal(t, want, Step(snap).Alive(1, 1))
			})
		}
	}
}

func TestStep_Blinker(t *testing.T) {
	vertical := []model.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	horizontal := []model.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	start := snapshotOf(t, 5, 5, vertical...)

	one := Step(start)
	assert.Equal(t, horizontal, one.AliveCells())
	assert.Equal(t, uint64(1), one.Generation())

	two := Step(one)
	assert.Equal(t, vertical, two.AliveCells())
	assert.True(t, start.Equal(two))
}

func TestStep_BlockIsStill(t *testing.T) {
	block := []model.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	snap := snapshotOf(t, 4, 4, block...)

	for i := 1; i <= 10; i++ {
		snap = Step(snap)
		assert.Equal(t, block, snap.AliveCells(), "after %d steps", i)
	}
}

func TestStep_GliderTranslates(t *testing.T) {
	glider, err := model.LookupPattern("glider")
	require.NoError(t, err)

	start := snapshotOf(t, 10, 10, glider...)
	want := snapshotOf(t, 10, 10, glider.Translate(1, 1)...)

	assert.True(t, want.Equal(stepN(start, 4)))
	assert.True(t, snapshotOf(t, 10, 10, glider.Translate(2, 2)...).Equal(stepN(start, 8)))
}

func TestCountNeighbors_Corner(t *testing.T) {
	full := make([]model.Coord, 0, 9)
	for y := range 3 {
		for x := range 3 {
			full = append(full, model.Coord{X: x, Y: y})
		}
	}
	snap := snapshotOf(t, 3, 3, full...)

	assert.Equal(t, 3, CountNeighbors(snap, 0, 0))
	assert.Equal(t, 3, CountNeighbors(snap, 2, 2))
	assert.Equal(t, 5, CountNeighbors(snap, 1, 0))
	assert.Equal(t, 8, CountNeighbors(snap, 1, 1))
}

func TestStep_NoWraparound(t *testing.T) {
	// these would be neighbours of (0,0) on a torus
	snap := snapshotOf(t, 5, 5, model.Coord{X: 4, Y: 4}, model.Coord{X: 4, Y: 0}, model.Coord{X: 0, Y: 4})
	assert.Equal(t, 0, CountNeighbors(snap, 0, 0))
	assert.False(t, Step(snap).Alive(0, 0))
}

func TestStep_IsolatedCornerDies(t *testing.T) {
	snap := snapshotOf(t, 5, 5, model.Coord{X: 0, Y: 0})
	assert.Zero(t, Step(snap).Population())
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	start := snapshotOf(t, 5, 5, model.Coord{X: 2, Y: 1}, model.Coord{X: 2, Y: 2}, model.Coord{X: 2, Y: 3})
	before := start.Hash()
	Step(start)
	assert.Equal(t, before, start.Hash())
}

func randomSnapshot(t *testing.T, r *rand.Rand, w, h int) model.Snapshot {
	var alive []model.Coord
	for y := range h {
		for x := range w {
			if r.IntN(3) == 0 {
				alive = append(alive, model.Coord{X: x, Y: y})
			}
		}
	}
	return snapshotOf(t, w, h, alive...)
}

func TestParallel_MatchesConway(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0))
	for _, workers := range []int{0, 1, 3, 64} {
		snap := randomSnapshot(t, r, 37, 23)
		for range 5 {
			seq := StepWith(Conway{}, snap)
			par := StepWith(Parallel{Workers: workers}, snap)
			require.True(t, seq.Equal(par), "workers=%d", workers)
			snap = seq
		}
	}
}

func TestRandomFlip_FlipsExactlyOneCell(t *testing.T) {
	snap := randomSnapshot(t, rand.New(rand.NewPCG(1, 0)), 8, 8)
	flip := NewRandomFlip(99)

	for range 20 {
		next := StepWith(flip, snap)
		diff := 0
		for y := range 8 {
			for x := range 8 {
				if next.Alive(x, y) != snap.Alive(x, y) {
					diff++
				}
			}
		}
		require.Equal(t, 1, diff)
		snap = next
	}
}

func TestByName(t *testing.T) {
	for _, name := range StrategyNames() {
		tr, err := ByName(name, 1)
		require.NoError(t, err)
		assert.Equal(t, name, tr.Name())
	}

	_, err := ByName("highlife", 1)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParallel_ShortBufferPanics(t *testing.T) {
	snap := snapshotOf(t, 4, 4, model.Coord{X: 1, Y: 1})
	assert.PanicsWithError(t,
		"[Parallel.Apply]: rows 2-4 need 16 cells, next holds 10",
		func() { Parallel{Workers: 2}.Apply(snap, make([]bool, 10)) })
}
