package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is a read-only copy of everything the views need for one frame.
// Views get a Snapshot rather than the Session so they cannot mutate state.
type Snapshot struct {
	Tick         uint64
	State        State
	Field        Field
	Ball         core.Rect
	BallHSpeed   int
	BallVSpeed   int
	LeftPaddle   core.Rect
	RightPaddle  core.Rect
	LeftVSpeed   int
	RightVSpeed  int
	Score        Score
	Winner       Player
	WinningScore int
	WinByTwo     bool
	Keys         map[Action]string
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	keys := make(map[Action]string, len(Actions))
	for _, a := range Actions {
		keys[a] = s.bindings.Key(a)
	}
	return Snapshot{
		Tick:         s.ticks,
		State:        s.state,
		Field:        s.field,
		Ball:         s.ball.Rect(),
		BallHSpeed:   s.ball.HSpeed,
		BallVSpeed:   s.ball.VSpeed,
		LeftPaddle:   s.left.Rect(),
		RightPaddle:  s.right.Rect(),
		LeftVSpeed:   s.left.VSpeed(),
		RightVSpeed:  s.right.VSpeed(),
		Score:        s.score,
		Winner:       s.winner,
		WinningScore: s.winningScore,
		WinByTwo:     s.winByTwo,
		Keys:         keys,
	}
}
