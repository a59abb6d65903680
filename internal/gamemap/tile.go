package gamemap

// Tile holds the movement, sight and exploration state for one map cell.
type Tile struct {
	BlocksMovement bool
	BlocksSight    bool
	Explored       bool
}

// MakeWall returns a blocking, opaque, unexplored wall tile.
func MakeWall() Tile {
	return Tile{BlocksMovement: true, BlocksSight: true}
}

// MakeFloor returns a passable, transparent, unexplored floor tile.
func MakeFloor() Tile {
	return Tile{}
}
