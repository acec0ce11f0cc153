package pong

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestDriverStep(t *testing.T) {
	s := newTestSession(t)
	input := &scriptedInput{batches: [][]core.Event{
		nil,
		{core.KeyDown("space")},
		{core.KeyDown("w")},
		{core.Quit()},
	}}
	r := &recordingRenderer{}
	d := NewDriver(s, input, r)

	if !d.Step() {
		t.Fatal("first Step() = false")
	}
	if !r.hasText("Welcome to Pong!") {
		t.Error("start screen not drawn")
	}
	if r.presents != 1 {
		t.Fatalf("presents = %d, expected 1", r.presents)
	}

	d.Step()
	if s.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing", s.State())
	}
	// 20 net segments, two paddles, the ball.
	if len(r.rects) != netSegments+3 {
		t.Errorf("drew %d rects, expected %d", len(r.rects), netSegments+3)
	}
	last := r.rects[len(r.rects)-1]
	if last.rect != s.ball.Rect() {
		t.Errorf("ball drawn at %+v, session has %+v", last.rect, s.ball.Rect())
	}

	d.Step()
	if s.left.VSpeed() != 2 {
		t.Errorf("left v = %d, expected 2", s.left.VSpeed())
	}
	// Input lands before physics: the paddle already moved this tick.
	if s.left.Top() != 268 {
		t.Errorf("left top = %d, expected 268", s.left.Top())
	}

	if d.Step() {
		t.Error("Step() = true after quit")
	}
	if r.presents != 3 {
		t.Errorf("presents = %d, expected 3 (nothing drawn on quit)", r.presents)
	}
	if len(r.clears) != 3 {
		t.Errorf("clears = %d, expected 3", len(r.clears))
	}
}

func TestDrawBetweenPoints(t *testing.T) {
	tests := []struct {
		name   string
		score  Score
		p1, p2 core.Color
	}{
		{name: "p1 leads", score: Score{P1: 3, P2: 1}, p1: core.ColorLeading, p2: core.ColorTrailing},
		{name: "p2 leads", score: Score{P1: 0, P2: 2}, p1: core.ColorTrailing, p2: core.ColorLeading},
		{name: "tied", score: Score{P1: 4, P2: 4}, p1: core.ColorTied, p2: core.ColorTied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			s.state = StateBetweenPoints
			s.score = tc.score
			r := &recordingRenderer{}
			s.Render(r)

			snap := s.Snapshot()
			c1, ok1 := r.colorOf(strconv.Itoa(snap.Score.P1))
			c2, ok2 := r.colorOf(strconv.Itoa(snap.Score.P2))
			if !ok1 || !ok2 {
				t.Fatalf("scores not rendered: %+v", r.rendered)
			}
			if c1 != tc.p1 || c2 != tc.p2 {
				t.Errorf("colors = %v, %v, expected %v, %v", c1, c2, tc.p1, tc.p2)
			}
			if !r.hasText("First to 11 (win by 2 points)") {
				t.Error("win target hint missing")
			}
			if !r.hasText("Press SPACE to continue") {
				t.Error("continue prompt missing")
			}
		})
	}
}

func TestDrawGameOver(t *testing.T) {
	s := newTestSession(t)
	s.state = StateGameOver
	s.score = Score{P1: 13, P2: 11}
	s.winner = Player1
	r := &recordingRenderer{}
	s.Render(r)

	for _, text := range []string{
		"GAME OVER - Player 1 wins!",
		"Final Score: Player 1 13 - 11 Player 2",
		"Press SPACE to restart",
	} {
		if !r.hasText(text) {
			t.Errorf("missing %q", text)
		}
	}
	if c, _ := r.colorOf("GAME OVER - Player 1 wins!"); c != core.ColorTitle {
		t.Errorf("banner color = %v, expected title", c)
	}
}

func TestDrawStartScreenShowsBindings(t *testing.T) {
	s := newTestSession(t)
	if err := s.Bindings().Rebind(ActionLeftUp, "q"); err != nil {
		t.Fatal(err)
	}
	r := &recordingRenderer{}
	s.Render(r)

	for _, text := range []string{"Q - Move up", "S - Move down", "UP - Move up", "DOWN - Move down", "Press SPACE to start"} {
		if !r.hasText(text) {
			t.Errorf("missing %q", text)
		}
	}
	if len(r.clears) != 1 || r.clears[0] != core.ColorBackground {
		t.Errorf("clears = %v, expected one background clear", r.clears)
	}
}
