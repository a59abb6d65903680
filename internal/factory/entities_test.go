package factory

import (
	"math/rand"
	"testing"

	"shadowdelve/internal/component"
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/generate"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	pos, ok := ecs.Get[component.Position](w, id)
	if !ok {
		t.Fatal("player must have CPosition")
	}
	if pos.X != 5 || pos.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", pos.X, pos.Y)
	}
	for _, ct := range []ecs.ComponentType{component.CRenderable, component.CTagPlayer, component.CTagBlocking} {
		if !w.Has(id, ct) {
			t.Errorf("player missing component %d", ct)
		}
	}
}

func TestNewMonsterBySpecies(t *testing.T) {
	cases := []struct {
		species generate.Species
		glyph   rune
		name    string
	}{
		{generate.SpeciesOrc, 'o', "Orc"},
		{generate.SpeciesTroll, 'T', "Troll"},
	}
	for _, tc := range cases {
		t.Run(tc.species.String(), func(t *testing.T) {
			w := ecs.NewWorld()
			id := NewMonster(w, tc.species, 2, 2)

			rend, _ := ecs.Get[component.Renderable](w, id)
			if rend.Glyph != tc.glyph {
				t.Errorf("glyph = %q; want %q", rend.Glyph, tc.glyph)
			}
			name, _ := ecs.Get[component.Name](w, id)
			if name.Value != tc.name {
				t.Errorf("name = %q; want %q", name.Value, tc.name)
			}
			m, ok := ecs.Get[component.Monster](w, id)
			if !ok || m.Species != tc.species {
				t.Errorf("monster component = %+v, %v", m, ok)
			}
			if !w.Has(id, component.CTagBlocking) {
				t.Error("monsters must block")
			}
		})
	}
}

func TestNewItemDoesNotBlock(t *testing.T) {
	w := ecs.NewWorld()
	id := NewItem(w, generate.ItemHealingPotion, 1, 1)
	if w.Has(id, component.CTagBlocking) {
		t.Error("items must not block")
	}
	if _, ok := ecs.Get[component.Item](w, id); !ok {
		t.Error("item must have CItem")
	}
}

func TestSpawnerBlocked(t *testing.T) {
	w := ecs.NewWorld()
	sp := Spawner{World: w}
	sp.SpawnItem(generate.ItemHealingPotion, 4, 4)
	if sp.Blocked(4, 4) {
		t.Error("an item should not block its tile")
	}
	sp.SpawnMonster(generate.SpeciesOrc, 4, 4)
	if !sp.Blocked(4, 4) {
		t.Error("a monster should block its tile")
	}
}

func TestSpawnerWithGenerator(t *testing.T) {
	w := ecs.NewWorld()
	cfg := &generate.Config{
		Width: 60, Height: 30, MaxRooms: 20,
		RoomMinSize: 5, RoomMaxSize: 9,
		MaxMonstersPerRoom: 3, MaxItemsPerRoom: 2,
		Rand: rand.New(rand.NewSource(11)),
	}
	res, err := generate.Generate(cfg, Spawner{World: w})
	if err != nil {
		t.Fatal(err)
	}

	occupied := map[component.Position]bool{}
	for _, id := range w.Query(component.CMonster, component.CPosition) {
		pos, _ := ecs.Get[component.Position](w, id)
		if res.Grid.IsBlocking(pos.X, pos.Y) {
			t.Errorf("monster %d spawned inside a wall at %v", id, pos)
		}
		if occupied[pos] {
			t.Errorf("two monsters share %v", pos)
		}
		occupied[pos] = true
	}
	for _, id := range w.Query(component.CItem, component.CPosition) {
		pos, _ := ecs.Get[component.Position](w, id)
		if res.Grid.IsBlocking(pos.X, pos.Y) {
			t.Errorf("item %d spawned inside a wall at %v", id, pos)
		}
	}
}
