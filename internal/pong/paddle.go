package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle limits.
const (
	MaxPaddleSpeed = 10 // |v_speed| ceiling
	PaddleMargin   = 2  // Gap between a paddle and its side of the field
)

// Side selects which end of the field a paddle guards.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Paddle is a vertically moving paddle. Positive speed moves it up.
type Paddle struct {
	side   Side
	width  int
	length int
	top    int
	vSpeed int
	field  Field
}

// NewPaddle creates a paddle centered vertically on its side of the field.
func NewPaddle(side Side, width, length int, field Field) (*Paddle, error) {
	return NewPaddleAt(side, width, length, field.Height/2-length/2, field)
}

// NewPaddleAt creates a paddle with its top edge at y.
func NewPaddleAt(side Side, width, length, y int, field Field) (*Paddle, error) {
	if width <= 0 || length <= 0 {
		return nil, fmt.Errorf("paddle %dx%d: %w", width, length, ErrInvalidDimension)
	}
	p := &Paddle{
		side:   side,
		width:  width,
		length: length,
		top:    y,
		field:  field,
	}
	if !p.Rect().Within(field.Width, field.Height) {
		return nil, fmt.Errorf("%s paddle at y=%d on %dx%d field: %w", side, y, field.Width, field.Height, ErrOutOfBounds)
	}
	return p, nil
}

// Side returns which side the paddle is on.
func (p *Paddle) Side() Side {
	return p.side
}

// X returns the paddle's fixed horizontal position.
func (p *Paddle) X() int {
	if p.side == SideLeft {
		return PaddleMargin
	}
	return p.field.Width - (p.width + PaddleMargin)
}

// Top returns the y-coordinate of the top edge.
func (p *Paddle) Top() int {
	return p.top
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X(), p.top, p.width, p.length)
}

// VSpeed returns the vertical speed.
func (p *Paddle) VSpeed() int {
	return p.vSpeed
}

// SetVSpeed sets the vertical speed. Values outside
// [-MaxPaddleSpeed, MaxPaddleSpeed] are rejected and leave the speed unchanged.
func (p *Paddle) SetVSpeed(v int) error {
	if v < -MaxPaddleSpeed || v > MaxPaddleSpeed {
		return fmt.Errorf("v_speed %d not within [-%d, %d]: %w", v, MaxPaddleSpeed, MaxPaddleSpeed, ErrSpeedOutOfRange)
	}
	p.vSpeed = v
	return nil
}

// CheckEdgesHit stops the paddle dead at the top or bottom edge.
func (p *Paddle) CheckEdgesHit() {
	if p.top <= 0 {
		p.vSpeed = 0
		p.top = 0
	} else if p.top+p.length >= p.field.Height {
		p.vSpeed = 0
		p.top = p.field.Height - p.length
	}
}

// Move shifts the paddle by its speed and clamps it to the field.
func (p *Paddle) Move() {
	// Screen Y grows downward, so positive speed decrements the top.
	p.top -= p.vSpeed
	p.CheckEdgesHit()
}

// recenter stops the paddle and returns it to the vertical center.
func (p *Paddle) recenter() {
	p.vSpeed = 0
	p.top = p.field.Height/2 - p.length/2
}
