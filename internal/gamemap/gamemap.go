package gamemap

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the fixed-size tile array for one dungeon.
// The generator writes it through Carve; after generation only MarkExplored
// mutates it.
type Grid struct {
	Width, Height int
	tiles         [][]Tile
}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Grid{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a copy of the tile at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) Tile {
	g.mustBeIn(x, y)
	return g.tiles[y][x]
}

// Carve turns (x, y) into floor.
func (g *Grid) Carve(x, y int) {
	g.mustBeIn(x, y)
	g.tiles[y][x] = MakeFloor()
}

// IsBlocking reports whether (x, y) blocks movement.
func (g *Grid) IsBlocking(x, y int) bool {
	g.mustBeIn(x, y)
	return g.tiles[y][x].BlocksMovement
}

// IsOpaque reports whether (x, y) blocks sight.
func (g *Grid) IsOpaque(x, y int) bool {
	g.mustBeIn(x, y)
	return g.tiles[y][x].BlocksSight
}

// IsExplored reports whether (x, y) has ever been seen.
func (g *Grid) IsExplored(x, y int) bool {
	g.mustBeIn(x, y)
	return g.tiles[y][x].Explored
}

// MarkExplored flags (x, y) as seen. It returns true when the flag changed.
// There is no way to clear the flag.
func (g *Grid) MarkExplored(x, y int) bool {
	g.mustBeIn(x, y)
	t := &g.tiles[y][x]
	if t.Explored {
		return false
	}
	t.Explored = true
	return true
}

// Reachable returns every non-blocking tile 4-connected to from.
// A blocking start yields an empty set.
func (g *Grid) Reachable(from Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if g.IsBlocking(from.X, from.Y) {
		return seen
	}
	queue := []Point{from}
	seen.Put(from)
	dirs := [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := Point{cur.X + d.X, cur.Y + d.Y}
			if !g.InBounds(n.X, n.Y) || seen.Has(n) || g.tiles[n.Y][n.X].BlocksMovement {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

func (g *Grid) mustBeIn(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d grid", x, y, g.Width, g.Height))
	}
}
