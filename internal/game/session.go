package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tantpham/dungeon-escape/data"
	"github.com/tantpham/dungeon-escape/internal/entity"
	"github.com/tantpham/dungeon-escape/internal/score"
	"github.com/tantpham/dungeon-escape/internal/telemetry"
	"github.com/tantpham/dungeon-escape/internal/ui"
	"github.com/tantpham/dungeon-escape/internal/world"
)

// DefaultLevel is the embedded level used when no level is configured.
const DefaultLevel = "intro.txt"

// Session holds the state of one dungeon run: exactly one live grid and
// one live player, replaced together on load and resize.
type Session struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	scores   *score.Store

	grid      *world.Grid
	player    *entity.Player
	levelName string

	message string
	turns   int
	running bool
	result  Outcome
}

// New creates a new session instance.
func New(cfg Config) (*Session, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
		result:   OutcomeQuit,
	}

	if cfg.ScorePath != "" {
		store, err := score.Open(cfg.ScorePath)
		if err != nil {
			// The run still works without a ledger.
			log.Warn().Err(err).Msg("score store unavailable")
		} else {
			s.scores = store
		}
	}

	return s, nil
}

// Run executes the main game loop and returns how the session ended.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "session.init")
	if err := s.loadLevel(ctx); err != nil {
		initSpan.End()
		s.Close()
		return OutcomeQuit, err
	}
	initSpan.SetAttributes(
		attribute.String("level.name", s.levelName),
		attribute.Int("level.rows", s.grid.Rows),
		attribute.Int("level.cols", s.grid.Cols),
	)
	initSpan.End()

	for s.running {
		s.renderer.Render(s.grid, s.player, s.message)
		s.handleInput(ctx)
	}

	s.screen.Close()
	s.record()
	if s.scores != nil {
		s.scores.Close()
	}
	return s.result, nil
}

// loadLevel loads the configured level from disk or the embedded set.
func (s *Session) loadLevel(ctx context.Context) error {
	name := s.cfg.LevelPath
	if name != "" {
		grid, player, err := world.LoadLevel(ctx, name)
		if err != nil {
			return err
		}
		s.grid, s.player, s.levelName = grid, player, name
		return nil
	}

	name = s.cfg.LevelName
	if name == "" {
		name = DefaultLevel
	}
	grid, player, err := world.LoadLevelFS(ctx, data.FS(), name)
	if err != nil {
		return err
	}
	s.grid, s.player, s.levelName = grid, player, name
	return nil
}

// handleInput processes a single input event.
func (s *Session) handleInput(ctx context.Context) {
	ev := s.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (s *Session) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.finish(OutcomeQuit)

	case tcell.KeyUp:
		s.takeTurn(ctx, world.DirUp)
	case tcell.KeyDown:
		s.takeTurn(ctx, world.DirDown)
	case tcell.KeyLeft:
		s.takeTurn(ctx, world.DirLeft)
	case tcell.KeyRight:
		s.takeTurn(ctx, world.DirRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			s.finish(OutcomeQuit)
		case 'r', 'R':
			s.resize(ctx)
		}
	}
}

// takeTurn resolves one player move and, if play continues, advances the
// monsters.
func (s *Session) takeTurn(ctx context.Context, dir world.Direction) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.turn")
	defer span.End()

	s.turns++
	outcome := world.ResolveMove(s.grid, s.player, dir)
	s.message = outcome.String()

	span.SetAttributes(
		attribute.String("turn.direction", dir.String()),
		attribute.String("turn.outcome", outcome.String()),
		attribute.Int("turn.number", s.turns),
	)

	switch outcome {
	case world.EscapedDungeon:
		s.finish(OutcomeEscaped)
		return
	case world.ExitedThroughDoor:
		s.finish(OutcomeLeft)
		return
	}

	captured := world.AdvanceMonsters(s.grid, s.player)
	span.SetAttributes(attribute.Bool("turn.captured", captured))
	if captured {
		s.message = "caught by a monster"
		s.finish(OutcomeCaptured)
	}
}

// resize doubles the grid dimensions, replacing the session's grid. The
// player's position is unchanged.
func (s *Session) resize(ctx context.Context) {
	resized, err := s.grid.Resize(ctx)
	if err != nil {
		s.message = "resize failed: " + err.Error()
		return
	}
	s.grid = resized
	s.message = "the dungeon grows"
}

// finish ends the loop with the given session outcome.
func (s *Session) finish(result Outcome) {
	s.result = result
	s.running = false
}

// record writes the finished run to the score ledger, if one is open.
func (s *Session) record() {
	if s.scores == nil {
		return
	}

	res := score.Result{
		Level:    s.levelName,
		Outcome:  s.result.String(),
		Treasure: s.player.Treasure,
		Turns:    s.turns,
	}
	if err := s.scores.Record(&res); err != nil {
		log.Warn().Err(err).Msg("failed to record run")
		return
	}
	log.Info().
		Str("run_id", res.ID).
		Str("outcome", res.Outcome).
		Int("treasure", res.Treasure).
		Int("turns", res.Turns).
		Msg("run recorded")
}

// Close cleans up session resources.
func (s *Session) Close() {
	if s.screen != nil {
		s.screen.Close()
	}
	if s.scores != nil {
		s.scores.Close()
	}
}
