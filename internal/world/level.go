package world

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tantpham/dungeon-escape/internal/entity"
	"github.com/tantpham/dungeon-escape/internal/telemetry"
)

// ErrLevelFormat is returned when a level description is malformed:
// missing or non-numeric header fields, too few tile tokens, unknown
// tokens, or a player position outside the declared grid.
var ErrLevelFormat = errors.New("malformed level")

// ParseLevel reads a level description and returns the populated grid and
// the player positioned at the declared coordinates with no treasure.
//
// The format is whitespace-delimited: a header of four integers
// (rows, cols, playerRow, playerCol) followed by rows x cols single-rune
// tile tokens in row-major order. The token at the player's coordinates is
// ignored; that cell always becomes TilePlayer.
func ParseLevel(r io.Reader) (*Grid, *entity.Player, error) {
	var rows, cols, playerRow, playerCol int
	if _, err := fmt.Fscan(r, &rows, &cols, &playerRow, &playerCol); err != nil {
		return nil, nil, fmt.Errorf("%w: reading header: %v", ErrLevelFormat, err)
	}

	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLevelFormat, err)
	}
	if !grid.InBounds(playerRow, playerCol) {
		return nil, nil, fmt.Errorf("%w: player position (%d,%d) outside %dx%d grid",
			ErrLevelFormat, playerRow, playerCol, rows, cols)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var token string
			if _, err := fmt.Fscan(r, &token); err != nil {
				return nil, nil, fmt.Errorf("%w: reading tile (%d,%d): %v", ErrLevelFormat, i, j, err)
			}
			if i == playerRow && j == playerCol {
				grid.Tiles[i][j] = TilePlayer
				continue
			}
			runes := []rune(token)
			if len(runes) != 1 || !Tile(runes[0]).Valid() {
				return nil, nil, fmt.Errorf("%w: unknown tile token %q at (%d,%d)", ErrLevelFormat, token, i, j)
			}
			grid.Tiles[i][j] = Tile(runes[0])
		}
	}

	return grid, entity.NewPlayer(playerRow, playerCol), nil
}

// LoadLevel reads a level description from a file on disk.
func LoadLevel(ctx context.Context, path string) (*Grid, *entity.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()
	return loadLevel(ctx, path, f)
}

// LoadLevelFS reads a level description from the given filesystem,
// typically the embedded data.FS.
func LoadLevelFS(ctx context.Context, fsys fs.FS, name string) (*Grid, *entity.Player, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()
	return loadLevel(ctx, name, f)
}

func loadLevel(ctx context.Context, name string, r io.Reader) (*Grid, *entity.Player, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.load")
	defer span.End()

	grid, player, err := ParseLevel(r)
	if err != nil {
		span.SetAttributes(attribute.String("level.error", err.Error()))
		return nil, nil, fmt.Errorf("level %s: %w", name, err)
	}

	span.SetAttributes(
		attribute.String("level.name", name),
		attribute.Int("level.rows", grid.Rows),
		attribute.Int("level.cols", grid.Cols),
	)

	return grid, player, nil
}
