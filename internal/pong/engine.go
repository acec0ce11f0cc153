package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// update runs one Playing tick of the collision and scoring pipeline.
// The order is fixed: ball, walls, paddle, goal lines, paddles.
func (s *Session) update() {
	s.ball.Move()
	s.ball.CheckSidesHit()

	// Only the paddle the ball travels toward can be hit.
	paddle := s.right
	if s.ball.HSpeed < 0 {
		paddle = s.left
	}
	if s.ball.CheckPaddleHit(paddle) {
		s.logger.Debug("paddle hit", "side", paddle.Side(), "h_speed", s.ball.HSpeed)
	}

	if end := s.ball.CheckEndsHit(); end != EndNone {
		s.endPoint(end)
	}

	s.left.Move()
	s.right.Move()
}

// endPoint scores a point against the side whose goal line was crossed.
func (s *Session) endPoint(end End) {
	var scorer Player
	switch end {
	case EndLeft:
		s.score.P2++
		scorer = Player2
	case EndRight:
		s.score.P1++
		scorer = Player1
	default:
		panic(fmt.Sprintf("pong: endPoint called with goal line %v", end))
	}

	if WinConditionMet(s.score, s.winningScore, s.winByTwo) {
		s.winner = scorer
		s.state = StateGameOver
		s.logger.Info("game over", "winner", scorer, "p1", s.score.P1, "p2", s.score.P2)
	} else {
		s.state = StateBetweenPoints
		s.logger.Info("point scored", "scorer", scorer, "p1", s.score.P1, "p2", s.score.P2)
	}

	s.resetObjects()
}

// WinConditionMet reports whether either player has reached winningScore
// with the required lead: two points when winByTwo is set, otherwise one.
func WinConditionMet(score Score, winningScore int, winByTwo bool) bool {
	margin := 1
	if winByTwo {
		margin = 2
	}
	reached := score.P1 >= winningScore || score.P2 >= winningScore
	return reached && core.Abs(score.P1-score.P2) >= margin
}
