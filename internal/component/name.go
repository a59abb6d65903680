package component

import "shadowdelve/internal/ecs"

const CName ecs.ComponentType = 3

type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }
