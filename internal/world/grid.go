package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tantpham/dungeon-escape/internal/telemetry"
)

var (
	// ErrBadDimensions is returned when a grid is requested with a
	// non-positive row or column count.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrNoPlayerMarker is returned when an operation requires a player
	// marker and the grid contains none.
	ErrNoPlayerMarker = errors.New("grid contains no player marker")
	// ErrDuplicatePlayerMarker is returned when a grid holds more than one
	// player marker. A well-formed grid has exactly one at all times.
	ErrDuplicatePlayerMarker = errors.New("grid contains more than one player marker")
)

// Grid is the rectangular tile store for one dungeon level.
// Cells are addressed row-major as (row, col).
type Grid struct {
	Rows  int
	Cols  int
	Tiles [][]Tile
}

// NewGrid allocates a rows x cols grid with every cell set to TileOpen.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}

	tiles := make([][]Tile, rows)
	for r := range tiles {
		tiles[r] = make([]Tile, cols)
		for c := range tiles[r] {
			tiles[r][c] = TileOpen
		}
	}

	return &Grid{Rows: rows, Cols: cols, Tiles: tiles}, nil
}

// InBounds returns true if (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the tile at (row, col). Out-of-bounds positions read as
// TilePillar so callers treat the grid edge like a wall.
func (g *Grid) At(row, col int) Tile {
	if !g.InBounds(row, col) {
		return TilePillar
	}
	return g.Tiles[row][col]
}

// Set writes the tile at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, t Tile) {
	if !g.InBounds(row, col) {
		return
	}
	g.Tiles[row][col] = t
}

// FindPlayer locates the single player marker. It returns an error if the
// grid holds zero or multiple markers.
func (g *Grid) FindPlayer() (row, col int, err error) {
	found := false
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Tiles[r][c] != TilePlayer {
				continue
			}
			if found {
				return 0, 0, ErrDuplicatePlayerMarker
			}
			row, col = r, c
			found = true
		}
	}
	if !found {
		return 0, 0, ErrNoPlayerMarker
	}
	return row, col, nil
}

// Resize produces a grid with doubled dimensions, tiling the current map
// into a 2x2 block arrangement: cell (i, j) of the new grid equals cell
// (i mod rows, j mod cols) of this one. The player marker is not duplicated
// across the copies; the single marker stays at its original (row, col).
// The receiver must not be used after a successful resize.
func (g *Grid) Resize(ctx context.Context) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.resize")
	defer span.End()

	playerRow, playerCol, err := g.FindPlayer()
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}

	resized, err := NewGrid(2*g.Rows, 2*g.Cols)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}

	// Blank the marker so the tiling copies plain floor, then restore it
	// once at the original coordinates.
	g.Tiles[playerRow][playerCol] = TileOpen
	for i := 0; i < resized.Rows; i++ {
		for j := 0; j < resized.Cols; j++ {
			resized.Tiles[i][j] = g.Tiles[i%g.Rows][j%g.Cols]
		}
	}
	resized.Tiles[playerRow][playerCol] = TilePlayer

	span.SetAttributes(
		attribute.Int("grid.rows", resized.Rows),
		attribute.Int("grid.cols", resized.Cols),
	)

	return resized, nil
}
