package component

import (
	"shadowdelve/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is how an entity is drawn. Higher RenderOrder draws on top.
type Renderable struct {
	Glyph       rune
	Color       tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
