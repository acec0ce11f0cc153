package pong

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Net layout.
const (
	netSegments = 20
	netWidth    = 1
)

// Render draws the current screen. The caller presents the frame.
func (s *Session) Render(r core.Renderer) {
	Draw(r, s.Snapshot(), s.theme)
}

// Draw renders a snapshot with the given theme.
func Draw(r core.Renderer, snap Snapshot, theme Theme) {
	r.Clear(core.ColorBackground)

	switch snap.State {
	case StateStartScreen:
		drawStartScreen(r, snap, theme)
	case StatePlaying:
		drawPlaying(r, snap)
	case StateBetweenPoints:
		drawBetweenPoints(r, snap, theme)
	case StateGameOver:
		drawGameOver(r, snap, theme)
	default:
		panic(fmt.Sprintf("pong: no view for state %v", snap.State))
	}
}

func drawStartScreen(r core.Renderer, snap Snapshot, theme Theme) {
	w, h := snap.Field.Width, snap.Field.Height

	title := r.RenderText("Welcome to Pong!", theme.Title, core.ColorForeground)
	blitCentered(r, title, w/2, h/2-100)

	start := r.RenderText(fmt.Sprintf("Press %s to start", keyName(snap.Keys[ActionConfirm])), theme.Menu, core.ColorForeground)
	blitCentered(r, start, w/2, h/2+50)

	p1 := []core.Drawable{
		r.RenderText("Player 1 controls:", theme.Controls, core.ColorForeground),
		r.RenderText(keyName(snap.Keys[ActionLeftUp])+" - Move up", theme.Controls, core.ColorForeground),
		r.RenderText(keyName(snap.Keys[ActionLeftDown])+" - Move down", theme.Controls, core.ColorForeground),
	}
	p2 := []core.Drawable{
		r.RenderText("Player 2 controls:", theme.Controls, core.ColorForeground),
		r.RenderText(keyName(snap.Keys[ActionRightUp])+" - Move up", theme.Controls, core.ColorForeground),
		r.RenderText(keyName(snap.Keys[ActionRightDown])+" - Move down", theme.Controls, core.ColorForeground),
	}

	startX := w / 6
	startY := h/2 + 130
	p1Width, lineH := p1[0].Size()
	spacing := max(25, lineH)
	for i, d := range p1 {
		r.Blit(d, startX, startY+i*spacing)
	}
	for i, d := range p2 {
		r.Blit(d, startX*5-p1Width, startY+i*spacing)
	}
}

func drawPlaying(r core.Renderer, snap Snapshot) {
	w, h := snap.Field.Width, snap.Field.Height

	segment := max(1, h/(netSegments*2))
	for i := 0; i < netSegments; i++ {
		r.DrawRect(core.NewRect(w/2-netWidth/2, i*segment*2, netWidth, segment), core.ColorForeground)
	}

	r.DrawRect(snap.LeftPaddle, core.ColorForeground)
	r.DrawRect(snap.RightPaddle, core.ColorForeground)
	r.DrawRect(snap.Ball, core.ColorForeground)
}

func drawBetweenPoints(r core.Renderer, snap Snapshot, theme Theme) {
	w, h := snap.Field.Width, snap.Field.Height

	c1, c2 := scoreColors(snap.Score)
	p1Label := r.RenderText("Player 1: ", theme.Title, core.ColorForeground)
	p2Label := r.RenderText("Player 2: ", theme.Title, core.ColorForeground)
	p1Score := r.RenderText(fmt.Sprint(snap.Score.P1), theme.Title, c1)
	p2Score := r.RenderText(fmt.Sprint(snap.Score.P2), theme.Title, c2)

	labelW, labelH := p1Label.Size()
	lineH := labelH * 11 / 10
	x := w/2 - labelW
	y := h/2 - lineH - 100
	r.Blit(p1Label, x, y)
	r.Blit(p1Score, x+labelW, y)
	p2LabelW, _ := p2Label.Size()
	r.Blit(p2Label, x, y+lineH)
	r.Blit(p2Score, x+p2LabelW, y+lineH)

	target := fmt.Sprintf("First to %d", snap.WinningScore)
	if snap.WinByTwo {
		target += " (win by 2 points)"
	}
	hint := r.RenderText(target, theme.Menu, core.ColorHint)
	_, hintH := hint.Size()
	blitCentered(r, hint, w/2, h/2+50)

	cont := r.RenderText(fmt.Sprintf("Press %s to continue", keyName(snap.Keys[ActionConfirm])), theme.Menu, core.ColorForeground)
	blitCentered(r, cont, w/2, h/2+50+hintH*2)
}

func drawGameOver(r core.Renderer, snap Snapshot, theme Theme) {
	w, h := snap.Field.Width, snap.Field.Height

	banner := r.RenderText(fmt.Sprintf("GAME OVER - %s wins!", snap.Winner), theme.Title, core.ColorTitle)
	blitCentered(r, banner, w/2, h/2-100)

	final := r.RenderText(
		fmt.Sprintf("Final Score: Player 1 %d - %d Player 2", snap.Score.P1, snap.Score.P2),
		theme.Menu, core.ColorForeground,
	)
	blitCentered(r, final, w/2, h/2)

	restart := r.RenderText(fmt.Sprintf("Press %s to restart", keyName(snap.Keys[ActionConfirm])), theme.Menu, core.ColorForeground)
	blitCentered(r, restart, w/2, h/2+100)
}

// scoreColors colours the leader's score green and the trailer's red.
func scoreColors(score Score) (p1, p2 core.Color) {
	switch {
	case score.P1 > score.P2:
		return core.ColorLeading, core.ColorTrailing
	case score.P1 < score.P2:
		return core.ColorTrailing, core.ColorLeading
	default:
		return core.ColorTied, core.ColorTied
	}
}

// blitCentered draws d centered on (cx, cy).
func blitCentered(r core.Renderer, d core.Drawable, cx, cy int) {
	dw, dh := d.Size()
	r.Blit(d, cx-dw/2, cy-dh/2)
}

// keyName formats a key identifier for on-screen instructions.
func keyName(key string) string {
	return strings.ToUpper(key)
}
