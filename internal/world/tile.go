// Package world provides the dungeon grid, level loading, and movement rules.
package world

// Tile represents a single map tile. The underlying rune is the token used
// in level files, so the enum doubles as the on-disk encoding.
type Tile rune

const (
	// TileOpen is walkable floor.
	TileOpen Tile = '-'
	// TilePillar is an impassable obstacle that also blocks monster line of sight.
	TilePillar Tile = '#'
	// TileTreasure is collectible treasure.
	TileTreasure Tile = 'T'
	// TileAmulet is the collectible amulet.
	TileAmulet Tile = 'A'
	// TileMonster is a cell occupied by a monster.
	TileMonster Tile = 'M'
	// TileDoor leads out of the current level.
	TileDoor Tile = 'D'
	// TileExit is the dungeon exit, usable only with treasure in hand.
	TileExit Tile = 'E'
	// TilePlayer marks the player's current cell. The terrain underneath is
	// not tracked separately: when the player leaves a cell it always
	// reverts to TileOpen.
	TilePlayer Tile = 'P'
)

// Valid returns true if the tile is one of the known kinds.
func (t Tile) Valid() bool {
	switch t {
	case TileOpen, TilePillar, TileTreasure, TileAmulet, TileMonster, TileDoor, TileExit, TilePlayer:
		return true
	}
	return false
}

// Blocks returns true if the player can never step onto the tile.
// The exit is handled separately because it depends on player state.
func (t Tile) Blocks() bool {
	return t == TilePillar || t == TileMonster
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
