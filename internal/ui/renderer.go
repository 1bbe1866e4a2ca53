package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tantpham/dungeon-escape/internal/entity"
	"github.com/tantpham/dungeon-escape/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the grid and a status line to the screen.
func (r *Renderer) Render(grid *world.Grid, player *entity.Player, message string) {
	r.screen.Clear()

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			tile := grid.At(row, col)
			// Tiles render two columns wide so the map reads roughly square.
			r.screen.SetContent(col*2, row, tile.Rune(), r.getTileStyle(tile))
		}
	}

	status := fmt.Sprintf("treasure: %d", player.Treasure)
	if message != "" {
		status += "  " + message
	}
	r.RenderMessage(status, grid.Rows+1)

	r.screen.Show()
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TilePlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case world.TileMonster:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case world.TileTreasure, world.TileAmulet:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	case world.TileDoor, world.TileExit:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TilePillar:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// RenderMessage displays a message at the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
