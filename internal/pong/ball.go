// Package pong implements two-player Pong: kinematic bodies, the collision and
// scoring engine, the screen state machine, input mapping and the loop driver.
// Nothing here knows about terminals; drawing goes through core.Renderer.
package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Field is the playfield size in pixels. Y grows downward.
type Field struct {
	Width  int
	Height int
}

// End identifies a goal line.
type End int

const (
	EndNone End = iota
	EndLeft
	EndRight
)

// String returns the goal line name.
func (e End) String() string {
	switch e {
	case EndLeft:
		return "left"
	case EndRight:
		return "right"
	default:
		return "none"
	}
}

// Ball is a square ball with integer velocity in pixels per tick.
type Ball struct {
	rect   core.Rect
	prev   core.Rect // Position before the last Move
	HSpeed int
	VSpeed int

	maxHSpeed int // 0 = no ceiling
	field     Field
}

// NewBall creates a ball of the given side length centered on the field.
func NewBall(side int, field Field) (*Ball, error) {
	return NewBallAt(side, field.Width/2-side/2, field.Height/2-side/2, field)
}

// NewBallAt creates a ball with its top-left corner at (x, y).
func NewBallAt(side, x, y int, field Field) (*Ball, error) {
	if side <= 0 {
		return nil, fmt.Errorf("ball side %d: %w", side, ErrInvalidDimension)
	}
	rect := core.NewRect(x, y, side, side)
	if !rect.Within(field.Width, field.Height) {
		return nil, fmt.Errorf("ball at (%d, %d) on %dx%d field: %w", x, y, field.Width, field.Height, ErrOutOfBounds)
	}
	return &Ball{rect: rect, prev: rect, field: field}, nil
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return b.rect
}

// Side returns the side length.
func (b *Ball) Side() int {
	return b.rect.W
}

// LimitHSpeed sets the ceiling paddle hits may accelerate |HSpeed| to.
// Zero removes the ceiling.
func (b *Ball) LimitHSpeed(limit int) {
	b.maxHSpeed = max(0, limit)
}

// Move advances the ball by its velocity. No bounds are checked;
// callers run the collision checks afterwards.
func (b *Ball) Move() {
	b.prev = b.rect
	b.rect.X += b.HSpeed
	b.rect.Y += b.VSpeed
}

// CheckSidesHit bounces the ball off the top and bottom edges. The ball is
// clamped back inside and always leaves heading away from the edge it touched.
func (b *Ball) CheckSidesHit() {
	if b.rect.Y <= 0 {
		b.VSpeed = core.Abs(b.VSpeed)
		b.rect.Y = 0
	} else if b.rect.Bottom() >= b.field.Height {
		b.VSpeed = -core.Abs(b.VSpeed)
		b.rect.Y = b.field.Height - b.rect.H
	}
}

// CheckPaddleHit reverses the horizontal direction and grows its magnitude by
// one when the ball touched the paddle during its last move. The whole path
// since the previous position is tested, so a fast ball cannot skip over a
// paddle; on a hit the ball is put back against the paddle face.
// Reports whether a hit happened.
func (b *Ball) CheckPaddleHit(p *Paddle) bool {
	paddle := p.Rect()
	if !b.sweep().Intersects(paddle) {
		return false
	}

	if b.HSpeed < 0 {
		b.rect.X = max(b.rect.X, paddle.Right())
	} else {
		b.rect.X = min(b.rect.X, paddle.X-b.rect.W)
	}

	b.HSpeed = -b.HSpeed
	if b.HSpeed < 0 {
		b.HSpeed--
	} else {
		b.HSpeed++
	}
	if b.maxHSpeed > 0 {
		b.HSpeed = core.Clamp(b.HSpeed, -b.maxHSpeed, b.maxHSpeed)
	}
	return true
}

// CheckEndsHit reports which goal line the ball has reached, if any.
func (b *Ball) CheckEndsHit() End {
	if b.rect.X <= 0 {
		return EndLeft
	}
	if b.rect.Right() >= b.field.Width {
		return EndRight
	}
	return EndNone
}

// sweep returns the box covering the previous and current positions.
func (b *Ball) sweep() core.Rect {
	x0, y0 := min(b.prev.X, b.rect.X), min(b.prev.Y, b.rect.Y)
	x1, y1 := max(b.prev.Right(), b.rect.Right()), max(b.prev.Bottom(), b.rect.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// place moves the ball without validation; used by resets that compute
// in-bounds positions themselves. The ball has no path afterwards.
func (b *Ball) place(x, y int) {
	b.rect.X = x
	b.rect.Y = y
	b.prev = b.rect
}
