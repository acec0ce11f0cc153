package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var testField = Field{Width: 800, Height: 600}

// newTestSession creates a session from the default config with optional tweaks.
func newTestSession(t *testing.T, mutate ...func(*config.Config)) *Session {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(&cfg)
	}
	s, err := NewSession(cfg, 42, nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// press sends key-down events through the state machine.
func press(s *Session, keys ...string) {
	for _, k := range keys {
		s.HandleEvent(core.KeyDown(k))
	}
}

// fakeText is the Drawable produced by recordingRenderer.
type fakeText struct {
	text  string
	color core.Color
	w, h  int
}

func (f fakeText) Size() (int, int) { return f.w, f.h }

type blit struct {
	text string
	x, y int
}

type drawnRect struct {
	rect  core.Rect
	color core.Color
}

// recordingRenderer records every call for assertions.
type recordingRenderer struct {
	clears   []core.Color
	rects    []drawnRect
	rendered []fakeText
	blits    []blit
	presents int
}

func (r *recordingRenderer) Clear(c core.Color) { r.clears = append(r.clears, c) }

func (r *recordingRenderer) DrawRect(rect core.Rect, c core.Color) {
	r.rects = append(r.rects, drawnRect{rect, c})
}

func (r *recordingRenderer) RenderText(text string, _ core.Font, c core.Color) core.Drawable {
	ft := fakeText{text: text, color: c, w: len(text) * 10, h: 26}
	r.rendered = append(r.rendered, ft)
	return ft
}

func (r *recordingRenderer) Blit(d core.Drawable, x, y int) {
	r.blits = append(r.blits, blit{d.(fakeText).text, x, y})
}

func (r *recordingRenderer) Present() { r.presents++ }

func (r *recordingRenderer) hasText(text string) bool {
	for _, b := range r.blits {
		if b.text == text {
			return true
		}
	}
	return false
}

func (r *recordingRenderer) colorOf(text string) (core.Color, bool) {
	for _, ft := range r.rendered {
		if ft.text == text {
			return ft.color, true
		}
	}
	return core.ColorDefault, false
}

// scriptedInput returns one batch of events per poll.
type scriptedInput struct {
	batches [][]core.Event
}

func (s *scriptedInput) Poll() []core.Event {
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}
