package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Driver runs the per-tick pipeline: poll input, update, render, present.
// Pacing belongs to whoever calls Step; the driver never sleeps.
type Driver struct {
	session  *Session
	input    core.InputSource
	renderer core.Renderer
}

// NewDriver wires a session to its input and output.
func NewDriver(session *Session, input core.InputSource, renderer core.Renderer) *Driver {
	return &Driver{
		session:  session,
		input:    input,
		renderer: renderer,
	}
}

// Session returns the driven session.
func (d *Driver) Session() *Session {
	return d.session
}

// Step runs one tick. Returns false once a quit event has been polled, in
// which case nothing is rendered.
func (d *Driver) Step() bool {
	if !d.session.Step(d.input.Poll()) {
		return false
	}
	d.session.Render(d.renderer)
	d.renderer.Present()
	return true
}
