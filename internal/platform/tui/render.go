package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// blockRune fills rectangles.
const blockRune = '█'

// styleKey identifies a unique cell appearance.
type styleKey struct {
	fg, bg core.Color
	font   core.Font
}

// Renderer draws playfield-pixel geometry onto a terminal cell grid.
// The playfield is scaled to fit the grid; every rectangle covers at least
// one cell so thin objects such as the net never disappear.
type Renderer struct {
	screen  *core.Screen
	fieldW  int
	fieldH  int
	palette map[core.Color]lipgloss.Color
	styles  map[styleKey]lipgloss.Style
	frame   string
}

// textBlock is text prepared by RenderText.
type textBlock struct {
	text  string
	font  core.Font
	color core.Color
	w, h  int
}

// Size returns the text extent in playfield pixels.
func (t *textBlock) Size() (int, int) {
	return t.w, t.h
}

// NewRenderer creates a renderer for a cols x rows terminal area using the
// playfield size and palette from cfg.
func NewRenderer(cfg config.Config, cols, rows int) *Renderer {
	palette := make(map[core.Color]lipgloss.Color)
	for _, role := range []core.Color{
		core.ColorBackground, core.ColorForeground, core.ColorTitle,
		core.ColorLeading, core.ColorTrailing, core.ColorTied, core.ColorHint,
	} {
		palette[role] = lipgloss.Color(cfg.Colors.Hex(role))
	}

	return &Renderer{
		screen:  core.NewScreen(max(1, cols), max(1, rows)),
		fieldW:  cfg.Screen.Width,
		fieldH:  cfg.Screen.Height,
		palette: palette,
		styles:  make(map[styleKey]lipgloss.Style),
	}
}

// Resize changes the terminal area. Content is discarded.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(max(1, cols), max(1, rows))
}

// Clear fills the grid with the background color.
func (r *Renderer) Clear(c core.Color) {
	r.screen.Clear(c)
}

// DrawRect fills the cells covered by rect.
func (r *Renderer) DrawRect(rect core.Rect, c core.Color) {
	r.screen.FillRect(r.toCells(rect), blockRune, c)
}

// RenderText measures text in playfield pixels: one cell per column.
func (r *Renderer) RenderText(text string, font core.Font, c core.Color) core.Drawable {
	cols, rows := r.screen.Width(), r.screen.Height()
	return &textBlock{
		text:  text,
		font:  font,
		color: c,
		w:     ceilDiv(lipgloss.Width(text)*r.fieldW, cols),
		h:     ceilDiv(r.fieldH, rows),
	}
}

// Blit writes text prepared by RenderText at a playfield position.
func (r *Renderer) Blit(d core.Drawable, x, y int) {
	t, ok := d.(*textBlock)
	if !ok {
		return
	}
	col, row := r.toCell(x, y)
	r.screen.DrawText(col, row, t.text, t.color, t.font)
}

// Present composes the grid into the frame string returned by Frame.
func (r *Renderer) Present() {
	r.frame = r.compose()
}

// Frame returns the most recently presented frame.
func (r *Renderer) Frame() string {
	return r.frame
}

// toCell maps a playfield point to the cell containing it.
func (r *Renderer) toCell(x, y int) (int, int) {
	return x * r.screen.Width() / r.fieldW, y * r.screen.Height() / r.fieldH
}

// toCells maps a playfield rectangle to the cells it touches.
func (r *Renderer) toCells(rect core.Rect) core.Rect {
	cols, rows := r.screen.Width(), r.screen.Height()
	x0, y0 := r.toCell(rect.X, rect.Y)
	x1 := max(x0+1, ceilDiv(rect.Right()*cols, r.fieldW))
	y1 := max(y0+1, ceilDiv(rect.Bottom()*rows, r.fieldH))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// compose renders the grid row by row, grouping runs of cells with the same
// appearance to keep escape sequences down.
func (r *Renderer) compose() string {
	s := r.screen
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := styleKey{fg: cell.Color, bg: cell.Background, font: cell.Font}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{fg: cell.Color, bg: cell.Background, font: cell.Font}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// style returns the cached lipgloss style for a cell appearance.
func (r *Renderer) style(key styleKey) lipgloss.Style {
	if st, ok := r.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(r.palette[key.fg]).
		Background(r.palette[key.bg]).
		Bold(key.font.Bold).
		Italic(key.font.Italic).
		Underline(key.font.Underline)
	r.styles[key] = st
	return st
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}
