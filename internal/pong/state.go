package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is the screen the game is on. Exactly one is active at a time.
type State int

const (
	StateStartScreen State = iota
	StatePlaying
	StateBetweenPoints
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStartScreen:
		return "StartScreen"
	case StatePlaying:
		return "Playing"
	case StateBetweenPoints:
		return "BetweenPoints"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// HandleEvent feeds one input event to the state machine. Only key-down
// events matter here; quitting is the driver's business.
func (s *Session) HandleEvent(e core.Event) {
	if e.Kind != core.EventKeyDown {
		return
	}

	switch s.state {
	case StateStartScreen:
		if s.isConfirm(e.Key) {
			s.state = StatePlaying
			s.logger.Info("game started")
		}
	case StatePlaying:
		s.mapper.Apply(e.Key, s.left, s.right)
	case StateBetweenPoints:
		if s.isConfirm(e.Key) {
			s.state = StatePlaying
			s.logger.Info("continuing to next point", "p1", s.score.P1, "p2", s.score.P2)
		}
	case StateGameOver:
		if s.isConfirm(e.Key) {
			s.resetGame()
			s.logger.Info("restarting game")
		}
	default:
		panic(fmt.Sprintf("pong: unhandled state %v", s.state))
	}
}

func (s *Session) isConfirm(key string) bool {
	return s.bindings.Lookup(key) == ActionConfirm
}
