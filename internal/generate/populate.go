package generate

import "shadowdelve/internal/gamemap"

// populateRoom spawns up to cfg.MaxMonstersPerRoom monsters and
// cfg.MaxItemsPerRoom items at random interior positions of room. A position
// that is a wall or already held by a blocking entity is skipped rather than
// re-rolled, so the maxima are upper bounds. Monsters also skip the start
// tile, where the player will stand; items may lie there.
func populateRoom(g *gamemap.Grid, room gamemap.Rect, start gamemap.Point, cfg *Config, sp Spawner) {
	rng := cfg.Rand

	monsters := rng.Intn(cfg.MaxMonstersPerRoom + 1)
	for n := 0; n < monsters; n++ {
		p := randomInRoom(room, cfg)
		if p == start || occupied(g, p, sp) {
			continue
		}
		species := SpeciesOrc
		if rng.Intn(100) < strongSpeciesChance {
			species = SpeciesTroll
		}
		sp.SpawnMonster(species, p.X, p.Y)
	}

	items := rng.Intn(cfg.MaxItemsPerRoom + 1)
	for n := 0; n < items; n++ {
		p := randomInRoom(room, cfg)
		if occupied(g, p, sp) {
			continue
		}
		sp.SpawnItem(ItemHealingPotion, p.X, p.Y)
	}
}

// randomInRoom returns a uniformly random interior position of room.
func randomInRoom(room gamemap.Rect, cfg *Config) gamemap.Point {
	return gamemap.Point{
		X: room.X1 + 1 + cfg.Rand.Intn(room.X2-room.X1-1),
		Y: room.Y1 + 1 + cfg.Rand.Intn(room.Y2-room.Y1-1),
	}
}

func occupied(g *gamemap.Grid, p gamemap.Point, sp Spawner) bool {
	return g.IsBlocking(p.X, p.Y) || sp.Blocked(p.X, p.Y)
}
