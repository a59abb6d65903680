// Package explore folds per-turn visibility into the grid's persistent
// exploration flags.
package explore

import "shadowdelve/internal/gamemap"

// Sight is the read side of a visibility computation.
type Sight interface {
	InSight(x, y int) bool
}

// Apply marks every in-sight cell of g as explored and returns how many cells
// were seen for the first time. v must cover the same area as g.
func Apply(g *gamemap.Grid, v Sight) int {
	newly := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if v.InSight(x, y) && g.MarkExplored(x, y) {
				newly++
			}
		}
	}
	return newly
}
