// Package game sequences one dungeon session: generation once, then per turn
// movement, visibility, exploration and drawing.
package game

import (
	"fmt"

	"shadowdelve/internal/component"
	"shadowdelve/internal/config"
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/explore"
	"shadowdelve/internal/factory"
	"shadowdelve/internal/fov"
	"shadowdelve/internal/gamemap"
	"shadowdelve/internal/generate"
	"shadowdelve/internal/logger"
	"shadowdelve/internal/render"
	"shadowdelve/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Game owns all state of one session. The grid is complete before the
// visibility map is created from it; after that only exploration flags change.
type Game struct {
	grid     *gamemap.Grid
	sight    *fov.Map
	world    *ecs.World
	playerID ecs.EntityID
	radius   int
	theme    string
	seed     int64
	turn     int
	explored int
	message  string
	log      *logrus.Entry
}

// New generates a dungeon from cfg, places the player at its start and
// computes the first field of view.
func New(cfg config.Config) (*Game, error) {
	rng, seed := cfg.Rand()
	world := ecs.NewWorld()
	res, err := generate.Generate(cfg.GenerateConfig(rng), factory.Spawner{World: world})
	if err != nil {
		return nil, fmt.Errorf("generate dungeon (seed %d): %w", seed, err)
	}

	g := &Game{
		grid:     res.Grid,
		sight:    fov.FromGrid(res.Grid),
		world:    world,
		playerID: factory.NewPlayer(world, res.Start.X, res.Start.Y),
		radius:   cfg.FOVRadius,
		theme:    cfg.Theme,
		seed:     seed,
		log:      logger.Log.WithField("seed", seed),
	}
	g.log.WithFields(logrus.Fields{
		"rooms":    len(res.Rooms),
		"entities": world.Len(),
	}).Info("dungeon ready")
	g.message = "Use hjklyubn or arrow keys to move, q to quit."
	g.refreshSight()
	return g, nil
}

// Grid returns the dungeon grid.
func (g *Game) Grid() *gamemap.Grid { return g.grid }

// Sight returns the visibility map of the current turn.
func (g *Game) Sight() *fov.Map { return g.sight }

// World returns the entity store.
func (g *Game) World() *ecs.World { return g.world }

// Seed returns the seed the dungeon was generated from.
func (g *Game) Seed() int64 { return g.seed }

// Turn returns the number of turns taken.
func (g *Game) Turn() int { return g.turn }

// PlayerPos returns the player's position.
func (g *Game) PlayerPos() gamemap.Point {
	pos, _ := ecs.Get[component.Position](g.world, g.playerID)
	return gamemap.Point{X: pos.X, Y: pos.Y}
}

// Step applies one action. It returns false when the player asked to quit.
func (g *Game) Step(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionNone:
		return true
	case ActionWait:
		g.message = "You wait."
	default:
		dx, dy := actionToDelta(a)
		result, other := system.TryMove(g.world, g.grid, g.playerID, dx, dy)
		switch result {
		case system.MoveBlocked:
			g.message = "The way is blocked."
			return true
		case system.MoveBumped:
			name, _ := ecs.Get[component.Name](g.world, other)
			g.message = fmt.Sprintf("You bump into the %s.", name.Value)
		default:
			g.message = ""
		}
	}
	g.turn++
	g.refreshSight()
	return true
}

// refreshSight recomputes visibility from the player and folds it into the
// grid's exploration flags.
func (g *Game) refreshSight() {
	p := g.PlayerPos()
	g.sight.Compute(p.X, p.Y, g.radius)
	g.explored += explore.Apply(g.grid, g.sight)
}

// Status returns the one-line summary shown under the map.
func (g *Game) Status() string {
	s := fmt.Sprintf("Turn %d  Seed %d  Seen %d  Explored %d", g.turn, g.seed, g.sight.VisibleCount(), g.explored)
	if g.message != "" {
		s += "  " + g.message
	}
	return s
}

// Run draws the game on screen and processes key events until the player
// quits or the screen is finalized. The caller owns the screen.
func (g *Game) Run(screen tcell.Screen) {
	r := render.NewRenderer(screen, render.ThemeByName(g.theme))
	for {
		p := g.PlayerPos()
		r.CenterOn(p.X, p.Y)
		r.DrawFrame(g.grid, g.sight, g.world)
		r.DrawStatus(g.Status())

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.Resize()
			screen.Sync()
		case *tcell.EventKey:
			if !g.Step(keyToAction(ev)) {
				g.log.WithField("turns", g.turn).Info("session ended")
				return
			}
		}
	}
}
