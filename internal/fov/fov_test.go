package fov

import (
	"testing"

	"shadowdelve/internal/gamemap"
)

// openGrid creates a fully-open (all floor) grid.
func openGrid(width, height int) *gamemap.Grid {
	g := gamemap.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Carve(x, y)
		}
	}
	return g
}

func TestComputeOriginAlwaysVisible(t *testing.T) {
	m := FromGrid(openGrid(20, 20))
	m.Compute(5, 5, 5)

	if !m.InSight(5, 5) {
		t.Error("observer's own cell must always be visible")
	}
}

func TestComputeRadiusZeroSeesOnlySelf(t *testing.T) {
	m := FromGrid(openGrid(7, 7))
	m.Compute(3, 3, 0)

	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			want := x == 3 && y == 3
			if got := m.InSight(x, y); got != want {
				t.Errorf("InSight(%d,%d)=%v, want %v", x, y, got, want)
			}
		}
	}
	if n := m.VisibleCount(); n != 1 {
		t.Errorf("VisibleCount()=%d, want 1", n)
	}
}

func TestComputeOpenFieldMatchesDisc(t *testing.T) {
	// With no obstacles the lit set is exactly the cells strictly inside the radius.
	const radius = 5
	m := FromGrid(openGrid(21, 21))
	m.Compute(10, 10, radius)

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx, dy := x-10, y-10
			want := dx*dx+dy*dy < radius*radius
			if got := m.InSight(x, y); got != want {
				t.Errorf("InSight(%d,%d)=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComputeExcludesCellsExactlyAtRadius(t *testing.T) {
	m := FromGrid(openGrid(20, 20))
	m.Compute(10, 10, 4)

	for _, p := range [][2]int{{10, 14}, {10, 6}, {14, 10}, {6, 10}} {
		if m.InSight(p[0], p[1]) {
			t.Errorf("cell (%d,%d) at distance 4 should not be visible with radius=4", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{10, 13}, {10, 7}, {13, 10}, {7, 10}} {
		if !m.InSight(p[0], p[1]) {
			t.Errorf("cell (%d,%d) at distance 3 should be visible with radius=4", p[0], p[1])
		}
	}
}

func TestComputeSmallRoomAllVisible(t *testing.T) {
	m := FromGrid(openGrid(3, 3))
	m.Compute(1, 1, 5)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if !m.InSight(x, y) {
				t.Errorf("cell (%d,%d) should be visible from the center", x, y)
			}
		}
	}
}

func TestComputeWallCastsShadow(t *testing.T) {
	g := openGrid(5, 5)
	m := FromGrid(g)
	m.SetObstacle(2, 1, true)
	m.Compute(2, 2, 5)

	if !m.InSight(2, 1) {
		t.Error("the wall itself should be visible")
	}
	if m.InSight(2, 0) {
		t.Error("cell (2,0) behind the wall should not be visible")
	}
	// Same distance, unobstructed rays.
	for _, p := range [][2]int{{0, 2}, {4, 2}, {2, 4}} {
		if !m.InSight(p[0], p[1]) {
			t.Errorf("cell (%d,%d) on a clear ray should be visible", p[0], p[1])
		}
	}
}

func TestComputeNarrowStripShadow(t *testing.T) {
	// Three columns, wall straight north of the observer.
	g := openGrid(3, 4)
	m := FromGrid(g)
	m.SetObstacle(1, 1, true)
	m.Compute(1, 2, 3)

	if m.InSight(1, 0) {
		t.Error("cell directly beyond the wall should be hidden")
	}
	if !m.InSight(0, 2) || !m.InSight(2, 2) {
		t.Error("lateral neighbours should stay visible")
	}
}

func TestComputeWallsFromGrid(t *testing.T) {
	// A corridor running east; the walls above and below block nothing along it
	// but hide the rows beyond them.
	g := gamemap.New(12, 5)
	for x := 0; x < 12; x++ {
		g.Carve(x, 2)
	}
	m := FromGrid(g)
	m.Compute(1, 2, 10)

	for x := 0; x < 11; x++ {
		if !m.InSight(x, 2) {
			t.Errorf("corridor cell (%d,2) should be visible", x)
		}
	}
	if !m.InSight(2, 1) || !m.InSight(2, 3) {
		t.Error("corridor walls next to the observer should be visible")
	}
	for x := 0; x < 12; x++ {
		if m.InSight(x, 0) || m.InSight(x, 4) {
			t.Errorf("column %d beyond the corridor walls should be hidden", x)
		}
	}
}

func TestComputeClearsOldVisibility(t *testing.T) {
	m := FromGrid(openGrid(20, 20))
	m.Compute(2, 2, 6)
	if !m.InSight(5, 5) {
		t.Fatal("precondition: (5,5) visible from (2,2)")
	}
	m.Compute(15, 15, 3)
	if m.InSight(5, 5) {
		t.Error("Compute should clear stale visibility before recalculating")
	}
}

func TestComputeIsRepeatable(t *testing.T) {
	g := openGrid(15, 15)
	m := FromGrid(g)
	for _, p := range [][2]int{{4, 4}, {5, 9}, {10, 6}, {7, 7}} {
		m.SetObstacle(p[0], p[1], true)
	}

	m.Compute(7, 5, 8)
	first := make([]bool, 0, 15*15)
	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			first = append(first, m.InSight(x, y))
		}
	}
	m.Compute(7, 5, 8)
	i := 0
	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			if m.InSight(x, y) != first[i] {
				t.Errorf("cell (%d,%d) changed between identical computations", x, y)
			}
			i++
		}
	}
}

func TestComputeAtGridEdgesNoPanic(t *testing.T) {
	m := FromGrid(openGrid(6, 4))
	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 3}, {5, 3}} {
		m.Compute(p[0], p[1], 10)
		if !m.InSight(p[0], p[1]) {
			t.Errorf("corner observer at (%d,%d) should see itself", p[0], p[1])
		}
	}
}

func TestComputeRejectsObserverOutOfBounds(t *testing.T) {
	m := NewMap(4, 4)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an observer outside the map")
		}
	}()
	m.Compute(-1, 2, 3)
}

func TestFromGridSnapshotsOpacity(t *testing.T) {
	g := gamemap.New(3, 1)
	g.Carve(1, 0)
	m := FromGrid(g)
	if !m.IsObstacle(0, 0) || m.IsObstacle(1, 0) || !m.IsObstacle(2, 0) {
		t.Fatal("obstacles should mirror the grid's opaque tiles")
	}
	g.Carve(0, 0)
	if !m.IsObstacle(0, 0) {
		t.Error("the map should not follow grid changes made after the snapshot")
	}
}
