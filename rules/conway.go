package rules

/*
ApplyConwayRules applies rule B3/S23 to a single cell.

A live cell survives with 2 or 3 neighbours and a dead cell is born with
exactly 3. Every other cell is dead in the next generation:

	(alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
