package generate

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidConfig is returned when a Config cannot describe a dungeon.
	ErrInvalidConfig = errors.New("invalid generator config")
	// ErrNoRooms is returned when every room attempt was rejected, which
	// leaves no starting position. It points at a configuration whose rooms
	// are too large for the grid; Generate does not retry.
	ErrNoRooms = errors.New("no room could be placed")
)

// Config drives generation of one dungeon.
type Config struct {
	Width, Height      int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	Rand               *rand.Rand
}

// Validate checks that rooms of every allowed size fit inside the grid.
func (c *Config) Validate() error {
	switch {
	case c.Rand == nil:
		return fmt.Errorf("%w: nil Rand", ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.RoomMinSize < 2:
		return fmt.Errorf("%w: room min size %d has no interior", ErrInvalidConfig, c.RoomMinSize)
	case c.RoomMinSize > c.RoomMaxSize:
		return fmt.Errorf("%w: room min size %d > max size %d", ErrInvalidConfig, c.RoomMinSize, c.RoomMaxSize)
	case c.RoomMaxSize >= c.Width || c.RoomMaxSize >= c.Height:
		return fmt.Errorf("%w: room max size %d does not fit %dx%d grid", ErrInvalidConfig, c.RoomMaxSize, c.Width, c.Height)
	case c.MaxRooms < 0 || c.MaxMonstersPerRoom < 0 || c.MaxItemsPerRoom < 0:
		return fmt.Errorf("%w: negative count", ErrInvalidConfig)
	}
	return nil
}

// Species identifies a monster kind.
type Species uint8

const (
	SpeciesOrc Species = iota
	SpeciesTroll
)

func (s Species) String() string {
	switch s {
	case SpeciesOrc:
		return "orc"
	case SpeciesTroll:
		return "troll"
	}
	return fmt.Sprintf("Species(%d)", uint8(s))
}

// ItemKind identifies an item kind.
type ItemKind uint8

const (
	ItemHealingPotion ItemKind = iota
)

func (k ItemKind) String() string {
	if k == ItemHealingPotion {
		return "healing potion"
	}
	return fmt.Sprintf("ItemKind(%d)", uint8(k))
}

// Spawner creates entities while rooms are populated.
type Spawner interface {
	// Blocked reports whether a blocking entity already stands at (x, y).
	Blocked(x, y int) bool
	SpawnMonster(s Species, x, y int)
	SpawnItem(k ItemKind, x, y int)
}

type nopSpawner struct{}

func (nopSpawner) Blocked(int, int) bool          { return false }
func (nopSpawner) SpawnMonster(Species, int, int) {}
func (nopSpawner) SpawnItem(ItemKind, int, int)   {}
