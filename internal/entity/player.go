// Package entity provides game entities like the player.
package entity

// Player represents the adventurer exploring the dungeon.
type Player struct {
	Row, Col int // Current position in the grid
	Treasure int // Treasure collected so far this level
}

// NewPlayer creates a player at the given position with no treasure.
func NewPlayer(row, col int) *Player {
	return &Player{Row: row, Col: col}
}

// MoveTo updates the player position.
func (p *Player) MoveTo(row, col int) {
	p.Row = row
	p.Col = col
}

// Position returns the current row, col coordinates.
func (p *Player) Position() (int, int) {
	return p.Row, p.Col
}
