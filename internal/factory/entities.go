package factory

import (
	"shadowdelve/internal/component"
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/generate"
	"shadowdelve/internal/system"

	"github.com/gdamore/tcell/v2"
)

// monsterLooks gives each species its glyph, colour and display name.
var monsterLooks = map[generate.Species]struct {
	glyph rune
	color tcell.Color
	name  string
}{
	generate.SpeciesOrc:   {'o', tcell.ColorDarkSeaGreen, "Orc"},
	generate.SpeciesTroll: {'T', tcell.ColorDarkGreen, "Troll"},
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: '@', Color: tcell.ColorWhite, RenderOrder: 10})
	w.Add(id, component.Name{Value: "Player"})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewMonster creates a blocking monster of species s at (x, y).
func NewMonster(w *ecs.World, s generate.Species, x, y int) ecs.EntityID {
	look := monsterLooks[s]
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: look.glyph, Color: look.color, RenderOrder: 5})
	w.Add(id, component.Name{Value: look.name})
	w.Add(id, component.Monster{Species: s})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewItem creates a floor item of kind k at (x, y). Items never block.
func NewItem(w *ecs.World, k generate.ItemKind, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: '!', Color: tcell.ColorViolet, RenderOrder: 2})
	w.Add(id, component.Name{Value: "Healing Potion"})
	w.Add(id, component.Item{Kind: k})
	return id
}

// Spawner lets the dungeon generator create entities in w.
type Spawner struct {
	World *ecs.World
}

var _ generate.Spawner = Spawner{}

// Blocked reports whether a blocking entity stands on (x, y).
func (s Spawner) Blocked(x, y int) bool {
	_, ok := system.BlockingAt(s.World, x, y)
	return ok
}

func (s Spawner) SpawnMonster(sp generate.Species, x, y int) { NewMonster(s.World, sp, x, y) }

func (s Spawner) SpawnItem(k generate.ItemKind, x, y int) { NewItem(s.World, k, x, y) }
