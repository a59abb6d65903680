package component

import (
	"shadowdelve/internal/ecs"
	"shadowdelve/internal/generate"
)

const CMonster ecs.ComponentType = 4

// Monster marks a hostile creature. Its behaviour lives outside this module.
type Monster struct {
	Species generate.Species
}

func (Monster) Type() ecs.ComponentType { return CMonster }
