package world

import "github.com/tantpham/dungeon-escape/internal/entity"

// Direction is a requested movement direction for one turn.
type Direction int

const (
	// DirNone requests no movement; the move resolves against the
	// player's current cell.
	DirNone Direction = iota
	// DirUp moves one row up.
	DirUp
	// DirDown moves one row down.
	DirDown
	// DirLeft moves one column left.
	DirLeft
	// DirRight moves one column right.
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// MoveOutcome classifies the result of one move attempt. Blocked and
// invalid moves are ordinary outcomes, never errors.
type MoveOutcome int

const (
	// Stayed means the move was blocked or invalid; nothing changed.
	Stayed MoveOutcome = iota
	// Moved is a plain step onto open floor.
	Moved
	// CollectedTreasure means the player stepped onto treasure.
	CollectedTreasure
	// CollectedAmulet means the player stepped onto the amulet.
	CollectedAmulet
	// ExitedThroughDoor means the player left the level through a door.
	ExitedThroughDoor
	// EscapedDungeon means the player reached the exit carrying treasure.
	// The level ends in victory.
	EscapedDungeon
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case Stayed:
		return "stayed"
	case Moved:
		return "moved"
	case CollectedTreasure:
		return "collected treasure"
	case CollectedAmulet:
		return "collected amulet"
	case ExitedThroughDoor:
		return "exited through door"
	case EscapedDungeon:
		return "escaped the dungeon"
	default:
		return "unknown"
	}
}

// Terminal returns true if the outcome ends the level.
func (o MoveOutcome) Terminal() bool {
	return o == ExitedThroughDoor || o == EscapedDungeon
}

// Step returns the candidate position one cell from (row, col) in the
// given direction. DirNone leaves the position unchanged.
func (d Direction) Step(row, col int) (nextRow, nextCol int) {
	switch d {
	case DirUp:
		return row - 1, col
	case DirDown:
		return row + 1, col
	case DirLeft:
		return row, col - 1
	case DirRight:
		return row, col + 1
	}
	return row, col
}

// ResolveMove validates one movement attempt and applies it to the grid and
// player. Effects are checked against the candidate cell in strict order:
// bounds, then blocking tiles, then collectibles and exits, then plain
// floor. A successful step touches exactly two cells: the vacated origin
// becomes TileOpen and the destination becomes TilePlayer.
func ResolveMove(grid *Grid, player *entity.Player, dir Direction) MoveOutcome {
	nextRow, nextCol := dir.Step(player.Row, player.Col)

	if !grid.InBounds(nextRow, nextCol) {
		return Stayed
	}

	dest := grid.Tiles[nextRow][nextCol]
	if dest.Blocks() {
		return Stayed
	}

	outcome := Moved
	switch dest {
	case TileTreasure:
		player.Treasure++
		outcome = CollectedTreasure
	case TileAmulet:
		outcome = CollectedAmulet
	case TileDoor:
		outcome = ExitedThroughDoor
	case TileExit:
		if player.Treasure < 1 {
			return Stayed
		}
		outcome = EscapedDungeon
	}

	grid.Tiles[player.Row][player.Col] = TileOpen
	grid.Tiles[nextRow][nextCol] = TilePlayer
	player.MoveTo(nextRow, nextCol)

	return outcome
}
