package rules

import (
	"math/rand/v2"
	"sync"

	"github.com/sheikhrachel/go-life/model"
)

// RandomFlip ignores the life rule and inverts one random cell per
// generation. It is useful for exercising renderers and the worker loop.
type RandomFlip struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFlip returns a RandomFlip with a deterministic seed.
func NewRandomFlip(seed int64) *RandomFlip {
	return &RandomFlip{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Name identifies the strategy.
func (*RandomFlip) Name() string { return StrategyRandom }

// Apply copies snap into next and inverts a single cell.
func (r *RandomFlip) Apply(snap model.Snapshot, next []bool) {
	width, height := snap.Dimensions()
	snap.CopyInto(next)

	r.mu.Lock()
	x, y := r.rng.IntN(width), r.rng.IntN(height)
	r.mu.Unlock()

	next[y*width+x] = !next[y*width+x]
}
