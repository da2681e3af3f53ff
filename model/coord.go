package model

import "fmt"

// Coord addresses a single cell.
type Coord struct {
	X int
	Y int
}

// Translate returns c shifted by (dx, dy).
func (c Coord) Translate(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
