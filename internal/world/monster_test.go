package world

import "testing"

func TestAdvanceMonstersClearLineOfSight(t *testing.T) {
	// Monster two cells left of the player moves exactly one step closer.
	grid, player := mustParse(t, "1 3 0 2\nM - P")

	if captured := AdvanceMonsters(grid, player); captured {
		t.Fatal("Captured = true, want false")
	}
	if grid.At(0, 0) != TileOpen {
		t.Errorf("Vacated cell = %q, want open", grid.At(0, 0))
	}
	if grid.At(0, 1) != TileMonster {
		t.Errorf("Cell (0,1) = %q, want monster", grid.At(0, 1))
	}
	if grid.At(0, 2) != TilePlayer {
		t.Errorf("Player cell = %q, want player marker", grid.At(0, 2))
	}
}

func TestAdvanceMonstersCapture(t *testing.T) {
	// Monster adjacent to the player steps onto the player's cell.
	grid, player := mustParse(t, "1 2 0 1\nM P")

	if captured := AdvanceMonsters(grid, player); !captured {
		t.Fatal("Captured = false, want true")
	}
	if grid.At(0, 1) != TileMonster {
		t.Errorf("Player cell = %q, want monster", grid.At(0, 1))
	}
	if grid.At(0, 0) != TileOpen {
		t.Errorf("Vacated cell = %q, want open", grid.At(0, 0))
	}
}

func TestAdvanceMonstersPillarBlocksSight(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		monsterRow int
		monsterCol int
	}{
		{"blocked left", "1 4 0 3\nM # - P", 0, 0},
		{"blocked right", "1 4 0 0\nP - # M", 0, 3},
		{"blocked above", "4 1 3 0\nM\n#\n-\nP", 0, 0},
		{"blocked below", "4 1 0 0\nP\n#\n-\nM", 3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, player := mustParse(t, tc.src)

			if captured := AdvanceMonsters(grid, player); captured {
				t.Fatal("Captured = true, want false")
			}
			if grid.At(tc.monsterRow, tc.monsterCol) != TileMonster {
				t.Errorf("Monster moved despite pillar; cell (%d,%d) = %q",
					tc.monsterRow, tc.monsterCol, grid.At(tc.monsterRow, tc.monsterCol))
			}
		})
	}
}

func TestAdvanceMonstersVertical(t *testing.T) {
	grid, player := mustParse(t, "3 1 2 0\nM\n-\nP")

	if captured := AdvanceMonsters(grid, player); captured {
		t.Fatal("Captured = true, want false")
	}
	if grid.At(0, 0) != TileOpen || grid.At(1, 0) != TileMonster {
		t.Errorf("Monster did not advance down: (0,0)=%q (1,0)=%q", grid.At(0, 0), grid.At(1, 0))
	}

	// A second call brings it onto the player.
	if captured := AdvanceMonsters(grid, player); !captured {
		t.Fatal("Captured = false after second advance, want true")
	}
}

func TestAdvanceMonstersNearestOnlyPerRay(t *testing.T) {
	// Two monsters share a ray; only the nearest moves.
	grid, player := mustParse(t, "1 5 0 4\nM - M - P")

	if captured := AdvanceMonsters(grid, player); captured {
		t.Fatal("Captured = true, want false")
	}
	if grid.At(0, 0) != TileMonster {
		t.Errorf("Far monster moved; cell (0,0) = %q", grid.At(0, 0))
	}
	if grid.At(0, 2) != TileOpen || grid.At(0, 3) != TileMonster {
		t.Errorf("Near monster: (0,2)=%q (0,3)=%q, want open/monster", grid.At(0, 2), grid.At(0, 3))
	}
}

func TestAdvanceMonstersAllRays(t *testing.T) {
	src := "3 3 1 1\n- M -\nM P M\n- M -"
	grid, player := mustParse(t, src)

	if captured := AdvanceMonsters(grid, player); !captured {
		t.Fatal("Captured = false, want true")
	}
	if grid.At(1, 1) != TileMonster {
		t.Errorf("Player cell = %q, want monster", grid.At(1, 1))
	}
	// The first ray's monster vacates onto the player cell, which leaves
	// open floor behind. Later rays find the player cell already occupied
	// by a monster, so their swap leaves them in place.
	if grid.At(1, 0) != TileOpen {
		t.Errorf("Cell (1,0) = %q, want open", grid.At(1, 0))
	}
	for _, pos := range [][2]int{{0, 1}, {1, 2}, {2, 1}} {
		if got := grid.At(pos[0], pos[1]); got != TileMonster {
			t.Errorf("Cell (%d,%d) = %q, want monster", pos[0], pos[1], got)
		}
	}
}
