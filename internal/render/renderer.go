package render

import (
	"sort"

	"shadowdelve/internal/component"
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved below the map.
const hudRows = 2

// Sight is the visibility data the renderer reads.
type Sight interface {
	InSight(x, y int) bool
}

// Renderer draws the dungeon onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(0, h-hudRows), theme.CellWidth()),
		theme:  theme,
	}
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-hudRows))
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame clears the screen and draws terrain, then entities on lit cells.
// It does not call Show.
func (r *Renderer) DrawFrame(g *gamemap.Grid, v Sight, w *ecs.World) {
	r.screen.Clear()
	r.drawMap(g, v)
	r.drawEntities(g, v, w)
}

// drawMap draws lit cells bright and explored cells dim; unseen cells stay blank.
func (r *Renderer) drawMap(g *gamemap.Grid, v Sight) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			lit := v.InSight(x, y)
			if !lit && !g.IsExplored(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			wall := g.IsOpaque(x, y)
			var look TileLook
			switch {
			case lit && wall:
				look = r.theme.Wall
			case lit:
				look = r.theme.Floor
			case wall:
				look = r.theme.DimWall
			default:
				look = r.theme.DimFloor
			}
			r.putGlyph(sx, sy, look.Glyph, look.style())
		}
	}
}

type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities draws entities standing on lit cells, lowest RenderOrder first.
func (r *Renderer) drawEntities(g *gamemap.Grid, v Sight, w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.Get[component.Position](w, id)
		rend, _ := ecs.Get[component.Renderable](w, id)
		if !g.InBounds(pos.X, pos.Y) || !v.InSight(pos.X, pos.Y) {
			continue
		}
		entities = append(entities, renderableEntity{pos: pos, rend: rend})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		bg := r.theme.Floor.BG
		r.putGlyph(sx, sy, e.rend.Glyph, tcell.StyleDefault.Foreground(e.rend.Color).Background(bg))
	}
}

// putGlyph draws ch at (x, y) and pads the rest of the map cell so that
// narrow glyphs line up on wide-cell themes.
func (r *Renderer) putGlyph(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
	for col := runewidth.RuneWidth(ch); col < r.camera.CellWidth; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
