package render

// Cursor tracks the x position of one scrolling marquee line. It is a pure
// value: Advance returns the next cursor instead of mutating, so a render
// tick can be replayed in tests.
type Cursor struct {
	canvasWidth int
	textWidth   int
	pos         int
}

// NewCursor starts a marquee at the right edge of the canvas.
func NewCursor(canvasWidth, textWidth int) Cursor {
	return Cursor{canvasWidth: canvasWidth, textWidth: textWidth, pos: canvasWidth}
}

// Position is the current left edge of the text in canvas coordinates.
func (c Cursor) Position() int { return c.pos }

// Advance moves the text left by step pixels. Once the text has fully left
// the frame the cursor snaps back to the right edge; wrapped reports that a
// full pass completed this step.
func (c Cursor) Advance(step int) (Cursor, bool) {
	c.pos -= step
	if c.pos+c.textWidth < 0 {
		c.pos = c.canvasWidth
		return c, true
	}
	return c, false
}
