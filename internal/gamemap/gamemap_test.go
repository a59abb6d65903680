package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := g.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewIsAllWall(t *testing.T) {
	g := New(6, 4)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != MakeWall() {
				t.Fatalf("tile (%d,%d) = %+v, want wall", x, y, g.At(x, y))
			}
		}
	}
}

func TestCarve(t *testing.T) {
	g := New(5, 5)
	if !g.IsBlocking(2, 2) || !g.IsOpaque(2, 2) {
		t.Fatal("fresh tile should be a wall")
	}
	g.Carve(2, 2)
	if g.IsBlocking(2, 2) {
		t.Error("carved tile should not block movement")
	}
	if g.IsOpaque(2, 2) {
		t.Error("carved tile should not block sight")
	}
	if g.IsExplored(2, 2) {
		t.Error("carved tile should start unexplored")
	}
}

func TestMarkExploredIsOneWay(t *testing.T) {
	g := New(3, 3)
	if !g.MarkExplored(1, 1) {
		t.Fatal("first MarkExplored should report a change")
	}
	if g.MarkExplored(1, 1) {
		t.Error("second MarkExplored should report no change")
	}
	if !g.IsExplored(1, 1) {
		t.Error("tile should stay explored")
	}
}

func TestAccessorsPanicOutOfBounds(t *testing.T) {
	g := New(4, 4)
	cases := []struct {
		name string
		fn   func()
	}{
		{"IsBlocking x=-1", func() { g.IsBlocking(-1, 0) }},
		{"IsOpaque y=4", func() { g.IsOpaque(0, 4) }},
		{"IsExplored x=4", func() { g.IsExplored(4, 0) }},
		{"Carve y=-1", func() { g.Carve(0, -1) }},
		{"MarkExplored far", func() { g.MarkExplored(10, 10) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	if c := r.Center(); c != (Point{2, 2}) {
		t.Errorf("expected center (2,2), got %v", c)
	}
	r = NewRect(3, 1, 5, 6)
	if c := r.Center(); c != (Point{5, 4}) {
		t.Errorf("expected center (5,4), got %v", c)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{3, 3, 7, 7}, true},
		{"edge touching", Rect{4, 0, 8, 4}, true},
		{"corner touching", Rect{4, 4, 8, 8}, true},
		{"one apart", Rect{5, 0, 9, 4}, false},
		{"disjoint", Rect{5, 5, 9, 9}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects(%v)=%v, want %v", tc.b, got, tc.want)
			}
			if got := tc.b.Intersects(a); got != tc.want {
				t.Errorf("Intersects is not symmetric for %v", tc.b)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 3) // interior x 3..5, y 3..4
	if !r.Contains(Point{3, 3}) || !r.Contains(Point{5, 4}) {
		t.Error("interior corners should be contained")
	}
	if r.Contains(Point{2, 3}) || r.Contains(Point{6, 3}) || r.Contains(Point{3, 5}) {
		t.Error("edge tiles should not be contained")
	}
}

func TestReachable(t *testing.T) {
	g := New(7, 3)
	for x := 0; x < 3; x++ {
		g.Carve(x, 1)
	}
	for x := 4; x < 7; x++ {
		g.Carve(x, 1)
	}
	got := g.Reachable(Point{0, 1})
	if got.Size() != 3 {
		t.Fatalf("reachable size = %d, want 3", got.Size())
	}
	if got.Has(Point{4, 1}) {
		t.Error("tile across the wall should not be reachable")
	}

	g.Carve(3, 1)
	if got := g.Reachable(Point{0, 1}); got.Size() != 7 {
		t.Errorf("after opening the gap reachable size = %d, want 7", got.Size())
	}
	if got := g.Reachable(Point{0, 0}); got.Size() != 0 {
		t.Errorf("reachable from a wall = %d tiles, want 0", got.Size())
	}
}
