package core

// Color names a role in the configured palette rather than a concrete value.
// The platform resolves roles to terminal styles, so games never deal with
// escape codes or RGB tuples.
type Color uint8

// Palette roles used by the pong screens.
const (
	ColorDefault    Color = iota
	ColorBackground       // Playfield fill
	ColorForeground       // Ball, paddles, net and body text
	ColorTitle            // Headline text (game over banner)
	ColorLeading          // Score of the player who is ahead
	ColorTrailing         // Score of the player who is behind
	ColorTied             // Both scores when level
	ColorHint             // Secondary instructions
)

// String returns the palette key for the color role.
func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorForeground:
		return "foreground"
	case ColorTitle:
		return "title"
	case ColorLeading:
		return "leading"
	case ColorTrailing:
		return "trailing"
	case ColorTied:
		return "tied"
	case ColorHint:
		return "hint"
	default:
		return "default"
	}
}
