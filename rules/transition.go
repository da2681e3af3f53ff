package rules

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	StrategyConway   = "conway"
	StrategyParallel = "parallel"
	StrategyRandom   = "random"
)

// ErrUnknownStrategy is returned by ByName for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown transition strategy")

// Transition computes the next generation. Apply reads only snap and writes
// every cell of next, which has snap.Size() cells. It must not retain either.
type Transition interface {
	Name() string
	Apply(snap model.Snapshot, next []bool)
}

// StrategyNames lists the names accepted by ByName.
func StrategyNames() []string {
	return []string{StrategyConway, StrategyParallel, StrategyRandom}
}

// ByName builds the transition registered under name. seed is only used by
// the random strategy.
func ByName(name string, seed int64) (Transition, error) {
	switch name {
	case StrategyConway:
		return Conway{}, nil
	case StrategyParallel:
		return Parallel{}, nil
	case StrategyRandom:
		return NewRandomFlip(seed), nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}
