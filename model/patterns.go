package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named set of cells that seeds a grid.
type Pattern []Coord

var patterns = map[string]Pattern{
	// period 2 oscillator
	"blinker": {{2, 1}, {2, 2}, {2, 3}},
	// still life
	"block": {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	// spaceship, moves (+1,+1) every 4 generations
	"glider": {{0, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}},
}

// LookupPattern returns a copy of the named seed pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return append(Pattern(nil), p...), nil
}

// PatternNames lists the known pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate returns the pattern shifted by (dx, dy).
func (p Pattern) Translate(dx, dy int) Pattern {
	out := make(Pattern, len(p))
	for i, c := range p {
		out[i] = c.Translate(dx, dy)
	}
	return out
}
