package pong

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Player identifies a side's player. Player 1 owns the left paddle.
type Player int

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// String returns the display name.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return ""
	}
}

// Score holds both players' points.
type Score struct {
	P1 int
	P2 int
}

// Theme holds the fonts the views draw with.
type Theme struct {
	Title    core.Font
	Menu     core.Font
	Controls core.Font
}

// Session is one running game: bodies, scores, the current screen and the
// rules it was created with. It is owned by a single goroutine.
type Session struct {
	field Field
	ball  *Ball
	left  *Paddle
	right *Paddle

	score  Score
	state  State
	winner Player

	winningScore int
	winByTwo     bool
	serveH       int
	serveV       int

	bindings *KeyBindings
	mapper   *InputMapper
	theme    Theme
	rng      *rand.Rand
	logger   *log.Logger
	ticks    uint64
}

// NewSession creates a session on the start screen. The config is copied;
// later changes to it do not affect the session. A nil logger discards output.
func NewSession(cfg config.Config, seed int64, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	field := Field{Width: cfg.Screen.Width, Height: cfg.Screen.Height}

	ball, err := NewBall(cfg.Ball.Size, field)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	ball.HSpeed = cfg.Ball.HSpeed
	ball.VSpeed = cfg.Ball.VSpeed
	ball.LimitHSpeed(cfg.Gameplay.MaxBallSpeed)

	left, err := NewPaddle(SideLeft, cfg.Paddle.Width, cfg.Paddle.Length, field)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	right, err := NewPaddle(SideRight, cfg.Paddle.Width, cfg.Paddle.Length, field)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	bindings := NewKeyBindings(cfg.Keys)
	return &Session{
		field:        field,
		ball:         ball,
		left:         left,
		right:        right,
		state:        StateStartScreen,
		winningScore: cfg.Gameplay.WinningScore,
		winByTwo:     cfg.Gameplay.WinByTwo,
		serveH:       core.Abs(cfg.Ball.HSpeed),
		serveV:       core.Abs(cfg.Ball.VSpeed),
		bindings:     bindings,
		mapper:       NewInputMapper(bindings),
		theme: Theme{
			Title:    cfg.Fonts.Title.Font(),
			Menu:     cfg.Fonts.Menu.Font(),
			Controls: cfg.Fonts.Controls.Font(),
		},
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}, nil
}

// State returns the current screen.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score pair.
func (s *Session) Score() Score {
	return s.score
}

// Winner returns the winner once the game is over, PlayerNone before.
func (s *Session) Winner() Player {
	return s.winner
}

// Bindings returns the live key bindings. Rebinding takes effect on the next event.
func (s *Session) Bindings() *KeyBindings {
	return s.bindings
}

// Step runs one tick: every event in arrival order, then at most one
// physics update. Returns false when a quit event was seen; events after
// the quit are dropped and no physics runs.
func (s *Session) Step(events []core.Event) bool {
	for _, e := range events {
		if e.Kind == core.EventQuit {
			s.logger.Info("quit requested", "state", s.state)
			return false
		}
		s.HandleEvent(e)
	}

	if s.state == StatePlaying {
		s.update()
	}
	s.ticks++
	return true
}

// resetGame clears scores and winner and returns to the start screen.
func (s *Session) resetGame() {
	s.score = Score{}
	s.winner = PlayerNone
	s.state = StateStartScreen
	s.resetObjects()
}

// resetObjects stops and recenters the paddles and serves the ball from the
// horizontal center at a random height in a random diagonal direction.
func (s *Session) resetObjects() {
	s.left.recenter()
	s.right.recenter()

	side := s.ball.Side()
	s.ball.place(s.field.Width/2-side/2, s.rng.Intn(s.field.Height-side+1))
	s.ball.HSpeed = s.randomSign() * s.serveH
	s.ball.VSpeed = s.randomSign() * s.serveV
}

func (s *Session) randomSign() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
