package generate

import (
	"math/rand"

	"shadowdelve/internal/gamemap"
)

// carveCorridor digs an L-shaped tunnel from a to b. A coin flip decides
// whether the horizontal leg runs along a's row or b's row.
func carveCorridor(g *gamemap.Grid, a, b gamemap.Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(g, a.X, b.X, a.Y)
		carveV(g, a.Y, b.Y, b.X)
	} else {
		carveV(g, a.Y, b.Y, a.X)
		carveH(g, a.X, b.X, b.Y)
	}
}

// carveH carves x1..x2 inclusive along row y.
func carveH(g *gamemap.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Carve(x, y)
	}
}

// carveV carves y1..y2 inclusive along column x.
func carveV(g *gamemap.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Carve(x, y)
	}
}

// carveRoom carves the interior of r.
func carveRoom(g *gamemap.Grid, r gamemap.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			g.Carve(x, y)
		}
	}
}
