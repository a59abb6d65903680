package generate

import (
	"fmt"

	"shadowdelve/internal/gamemap"
	"shadowdelve/internal/logger"

	"github.com/sirupsen/logrus"
)

// strongSpeciesChance is the percentage of monsters that are trolls.
const strongSpeciesChance = 20

// Result is a finished dungeon.
type Result struct {
	Grid  *gamemap.Grid
	Start gamemap.Point
	// Rooms lists the accepted rooms in placement order. Nothing in the
	// grid refers back to them.
	Rooms []gamemap.Rect
}

// Generate builds a dungeon of up to cfg.MaxRooms rectangular rooms joined in
// placement order by L-shaped corridors, and populates each room through sp
// as it is carved. A room that would touch or overlap an earlier one is
// dropped, not retried, so fewer rooms than requested is normal. sp may be nil.
func Generate(cfg *Config, sp Spawner) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sp == nil {
		sp = nopSpawner{}
	}
	rng := cfg.Rand
	res := &Result{Grid: gamemap.New(cfg.Width, cfg.Height)}
	rejected := 0

	for n := 0; n < cfg.MaxRooms; n++ {
		w := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		x := rng.Intn(cfg.Width - w)
		y := rng.Intn(cfg.Height - h)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, res.Rooms) {
			rejected++
			continue
		}

		carveRoom(res.Grid, room)
		center := room.Center()
		if len(res.Rooms) == 0 {
			res.Start = center
		} else {
			prev := res.Rooms[len(res.Rooms)-1].Center()
			carveCorridor(res.Grid, prev, center, rng)
		}
		populateRoom(res.Grid, room, res.Start, cfg, sp)
		res.Rooms = append(res.Rooms, room)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"attempts": cfg.MaxRooms,
		"rooms":    len(res.Rooms),
		"rejected": rejected,
	})
	if len(res.Rooms) == 0 {
		log.Warn("dungeon generation placed no rooms")
		return nil, fmt.Errorf("generate %dx%d with rooms %d..%d: %w",
			cfg.Width, cfg.Height, cfg.RoomMinSize, cfg.RoomMaxSize, ErrNoRooms)
	}
	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		log = log.WithFields(logrus.Fields{
			"start":     fmt.Sprintf("%d,%d", res.Start.X, res.Start.Y),
			"reachable": res.Grid.Reachable(res.Start).Size(),
		})
	}
	log.Debug("dungeon generated")
	return res, nil
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}
