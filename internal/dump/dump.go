// Package dump renders a dungeon as plain text for inspection outside a
// terminal UI.
package dump

import (
	"bufio"
	"io"
	"strings"

	"shadowdelve/internal/component"
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/gamemap"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Sight is the visibility data the dump reads.
type Sight interface {
	InSight(x, y int) bool
}

// Options controls what the dump shows.
type Options struct {
	// Color wraps cells in ANSI colour codes.
	Color bool
	// Reveal draws the whole map; otherwise only explored cells are drawn.
	Reveal bool
}

var (
	litStyle    = color.New(color.FgYellow)
	dimStyle    = color.New(color.FgBlue)
	hiddenStyle = color.New(color.FgDarkGray)
	entityStyle = color.New(color.FgLightWhite, color.OpBold)
)

// Write prints g one row per line. Walls are '#', floors '.', unknown cells
// blank, and entities on in-sight cells show their glyph. v may be nil.
func Write(out io.Writer, g *gamemap.Grid, v Sight, w *ecs.World, opts Options) error {
	glyphs := entityGlyphs(w)
	bw := bufio.NewWriter(out)
	for y := 0; y < g.Height; y++ {
		var line strings.Builder
		for x := 0; x < g.Width; x++ {
			line.WriteString(cell(g, v, glyphs, x, y, opts))
		}
		bw.WriteString(strings.TrimRight(line.String(), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func cell(g *gamemap.Grid, v Sight, glyphs map[gamemap.Point]rune, x, y int, opts Options) string {
	lit := v != nil && v.InSight(x, y)
	explored := g.IsExplored(x, y)
	if !lit && !explored && !opts.Reveal {
		return " "
	}

	ch := '.'
	if g.IsOpaque(x, y) {
		ch = '#'
	}
	style := hiddenStyle
	switch {
	case lit:
		style = litStyle
		if e, ok := glyphs[gamemap.Point{X: x, Y: y}]; ok {
			ch, style = e, entityStyle
		}
	case explored:
		style = dimStyle
	}

	s := string(ch)
	if runewidth.RuneWidth(ch) != 1 {
		s = runewidth.FillRight(runewidth.Truncate(s, 1, "?"), 1)
	}
	if opts.Color {
		return style.Sprint(s)
	}
	return s
}

// entityGlyphs maps each occupied cell to the glyph with the highest render order.
func entityGlyphs(w *ecs.World) map[gamemap.Point]rune {
	out := map[gamemap.Point]rune{}
	if w == nil {
		return out
	}
	order := map[gamemap.Point]int{}
	for _, id := range w.Query(component.CRenderable, component.CPosition) {
		pos, _ := ecs.Get[component.Position](w, id)
		rend, _ := ecs.Get[component.Renderable](w, id)
		p := gamemap.Point{X: pos.X, Y: pos.Y}
		if prev, ok := order[p]; ok && prev > rend.RenderOrder {
			continue
		}
		out[p], order[p] = rend.Glyph, rend.RenderOrder
	}
	return out
}
