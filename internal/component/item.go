package component

import (
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/generate"
)

const CItem ecs.ComponentType = 5

// Item marks a pickup lying on the floor.
type Item struct {
	Kind generate.ItemKind
}

func (Item) Type() ecs.ComponentType { return CItem }
