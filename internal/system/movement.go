package system

import (
	"shadowdelve/internal/component"
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or grid edge
	MoveBumped                    // another blocking entity holds the tile
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveBumped:
		return "bumped"
	}
	return "unknown"
}

// BlockingAt returns the blocking entity standing on (x, y), if any.
func BlockingAt(w *ecs.World, x, y int) (ecs.EntityID, bool) {
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		pos, _ := ecs.Get[component.Position](w, id)
		if pos.X == x && pos.Y == y {
			return id, true
		}
	}
	return ecs.NilEntity, false
}

// TryMove attempts to move entity id by (dx, dy) on g.
// On MoveBumped the blocking entity is returned.
func TryMove(w *ecs.World, g *gamemap.Grid, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	pos, ok := ecs.Get[component.Position](w, id)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	nx, ny := pos.X+dx, pos.Y+dy

	if !g.InBounds(nx, ny) || g.IsBlocking(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}
	if other, ok := BlockingAt(w, nx, ny); ok && other != id {
		return MoveBumped, other
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}
