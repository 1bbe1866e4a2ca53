package world

import "github.com/tantpham/dungeon-escape/internal/entity"

// AdvanceMonsters gives every monster with line of sight to the player one
// step toward them. Each of the four axis rays from the player's cell is
// scanned outward; a pillar ends the ray, and the nearest monster before a
// pillar moves one cell along the ray toward the player. At most one
// monster moves per ray per call.
//
// Returns true if a monster reached the player's cell. The caller decides
// what capture means; the grid still holds TileMonster at that cell.
func AdvanceMonsters(grid *Grid, player *entity.Player) (captured bool) {
	advanceRay(grid, player.Row, player.Col, 0, -1)
	advanceRay(grid, player.Row, player.Col, 0, 1)
	advanceRay(grid, player.Row, player.Col, -1, 0)
	advanceRay(grid, player.Row, player.Col, 1, 0)

	return grid.Tiles[player.Row][player.Col] == TileMonster
}

// advanceRay scans outward from (playerRow, playerCol) along the unit step
// (dRow, dCol) and moves the first visible monster one cell back toward the
// player.
func advanceRay(grid *Grid, playerRow, playerCol, dRow, dCol int) {
	for row, col := playerRow+dRow, playerCol+dCol; grid.InBounds(row, col); row, col = row+dRow, col+dCol {
		switch grid.Tiles[row][col] {
		case TilePillar:
			// No line of sight past an obstacle.
			return
		case TileMonster:
			destRow, destCol := row-dRow, col-dCol
			vacated := grid.Tiles[destRow][destCol]
			if vacated == TilePlayer {
				// The player tile has no underlying terrain to leave behind.
				vacated = TileOpen
			}
			grid.Tiles[destRow][destCol] = TileMonster
			grid.Tiles[row][col] = vacated
			return
		}
	}
}
