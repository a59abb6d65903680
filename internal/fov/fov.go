// Package fov computes field of view over a grid using recursive
// shadowcasting.
package fov

import (
	"fmt"

	"shadowdelve/internal/gamemap"
)

// multipliers maps a canonical octant's (dx, dy) into grid offsets:
//
//	gridX = ox + dx*xx + dy*xy
//	gridY = oy + dx*yx + dy*yy
//
// Column i holds (xx, xy, yx, yy) for octant i.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

type cell struct {
	obstacle bool
	inSight  bool
}

// Map is the per-cell obstacle/sight buffer. Obstacles are written by the
// owner; sight flags are owned by Compute and rewritten on every call.
type Map struct {
	Width, Height int
	cells         []cell
}

// NewMap returns a Map of the given size with no obstacles.
func NewMap(width, height int) *Map {
	return &Map{Width: width, Height: height, cells: make([]cell, width*height)}
}

// FromGrid snapshots the sight-blocking layer of g. Later changes to g are
// not picked up; call SetObstacle to keep the two in sync.
func FromGrid(g *gamemap.Grid) *Map {
	m := NewMap(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			m.cells[m.index(x, y)].obstacle = g.IsOpaque(x, y)
		}
	}
	return m
}

// SetObstacle marks (x, y) as blocking sight or not.
func (m *Map) SetObstacle(x, y int, blocked bool) {
	m.cells[m.mustIndex(x, y)].obstacle = blocked
}

// IsObstacle reports whether (x, y) blocks sight.
func (m *Map) IsObstacle(x, y int) bool {
	return m.cells[m.mustIndex(x, y)].obstacle
}

// InSight reports whether (x, y) was visible at the last Compute.
func (m *Map) InSight(x, y int) bool {
	return m.cells[m.mustIndex(x, y)].inSight
}

// VisibleCount returns how many cells were visible at the last Compute.
func (m *Map) VisibleCount() int {
	n := 0
	for _, c := range m.cells {
		if c.inSight {
			n++
		}
	}
	return n
}

// Compute clears every sight flag and recomputes them for an observer at
// (x, y). Cells at a distance of radius or more are never lit; the observer's
// own cell always is.
func (m *Map) Compute(x, y, radius int) {
	origin := m.mustIndex(x, y)
	for i := range m.cells {
		m.cells[i].inSight = false
	}
	for oct := 0; oct < 8; oct++ {
		m.castLight(x, y, 1, 1.0, 0.0, radius,
			multipliers[0][oct], multipliers[1][oct],
			multipliers[2][oct], multipliers[3][oct])
	}
	m.cells[origin].inSight = true
}

// castLight scans one octant row by row starting at row, lighting cells
// whose slopes fall inside [end, start]. Each run of obstacles spawns a
// narrower scan one row further out.
func (m *Map) castLight(ox, oy, row int, start, end float32, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	var newStart float32

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			lSlope := (float32(dx) - 0.5) / (float32(dy) + 0.5)
			rSlope := (float32(dx) + 0.5) / (float32(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			gx := ox + dx*xx + dy*xy
			gy := oy + dx*yx + dy*yy
			if gx < 0 || gy < 0 || gx >= m.Width || gy >= m.Height {
				continue
			}
			idx := m.index(gx, gy)

			if dx*dx+dy*dy < radiusSq {
				m.cells[idx].inSight = true
			}

			opaque := m.cells[idx].obstacle
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				m.castLight(ox, oy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func (m *Map) index(x, y int) int {
	return y*m.Width + x
}

func (m *Map) mustIndex(x, y int) int {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		panic(fmt.Sprintf("fov: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return m.index(x, y)
}
