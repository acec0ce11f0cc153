package core

// Font selects the typographic treatment of rendered text.
// Terminals have a single glyph size, so a font is a set of style flags.
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// Drawable is rendered content with a known extent in playfield pixels.
type Drawable interface {
	Size() (w, h int)
}

// Renderer is the drawing capability views call into.
// All coordinates are playfield pixels; implementations map them onto their
// own surface. A renderer never gets write access to game state.
type Renderer interface {
	// Clear fills the whole surface with the given color.
	Clear(c Color)

	// DrawRect fills a rectangle.
	DrawRect(r Rect, c Color)

	// RenderText prepares text for drawing and reports its size so callers
	// can lay it out before blitting.
	RenderText(text string, font Font, c Color) Drawable

	// Blit draws previously rendered text with its top-left corner at (x, y).
	Blit(d Drawable, x, y int)

	// Present publishes the frame drawn since the last Clear.
	Present()
}
