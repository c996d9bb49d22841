package render

import "unicode"

// Font geometry. Glyphs are 5 pixels wide on a 7-pixel baseline with two
// blank columns between characters, so every character advances 7 pixels.
const (
	GlyphWidth  = 5
	GlyphHeight = 7
	CharSpacing = 2
	CharAdvance = GlyphWidth + CharSpacing
)

// font5x7 holds row bitmaps, one byte per row, glyph bits in the top five
// positions. Lowercase input is folded to uppercase before lookup.
var font5x7 = map[rune][GlyphHeight]byte{
	' ':  {},
	'A':  {0b01110000, 0b10001000, 0b10001000, 0b11111000, 0b10001000, 0b10001000, 0b10001000},
	'B':  {0b11110000, 0b10001000, 0b10001000, 0b11110000, 0b10001000, 0b10001000, 0b11110000},
	'C':  {0b01110000, 0b10001000, 0b10000000, 0b10000000, 0b10000000, 0b10001000, 0b01110000},
	'D':  {0b11100000, 0b10010000, 0b10001000, 0b10001000, 0b10001000, 0b10010000, 0b11100000},
	'E':  {0b11111000, 0b10000000, 0b10000000, 0b11110000, 0b10000000, 0b10000000, 0b11111000},
	'F':  {0b11111000, 0b10000000, 0b10000000, 0b11110000, 0b10000000, 0b10000000, 0b10000000},
	'G':  {0b01110000, 0b10001000, 0b10000000, 0b10111000, 0b10001000, 0b10001000, 0b01111000},
	'H':  {0b10001000, 0b10001000, 0b10001000, 0b11111000, 0b10001000, 0b10001000, 0b10001000},
	'I':  {0b01110000, 0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b01110000},
	'J':  {0b00111000, 0b00010000, 0b00010000, 0b00010000, 0b00010000, 0b10010000, 0b01100000},
	'K':  {0b10001000, 0b10010000, 0b10100000, 0b11000000, 0b10100000, 0b10010000, 0b10001000},
	'L':  {0b10000000, 0b10000000, 0b10000000, 0b10000000, 0b10000000, 0b10000000, 0b11111000},
	'M':  {0b10001000, 0b11011000, 0b10101000, 0b10101000, 0b10001000, 0b10001000, 0b10001000},
	'N':  {0b10001000, 0b11001000, 0b10101000, 0b10011000, 0b10001000, 0b10001000, 0b10001000},
	'O':  {0b01110000, 0b10001000, 0b10001000, 0b10001000, 0b10001000, 0b10001000, 0b01110000},
	'P':  {0b11110000, 0b10001000, 0b10001000, 0b11110000, 0b10000000, 0b10000000, 0b10000000},
	'Q':  {0b01110000, 0b10001000, 0b10001000, 0b10001000, 0b10101000, 0b10010000, 0b01101000},
	'R':  {0b11110000, 0b10001000, 0b10001000, 0b11110000, 0b10100000, 0b10010000, 0b10001000},
	'S':  {0b01111000, 0b10000000, 0b10000000, 0b01110000, 0b00001000, 0b00001000, 0b11110000},
	'T':  {0b11111000, 0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b00100000},
	'U':  {0b10001000, 0b10001000, 0b10001000, 0b10001000, 0b10001000, 0b10001000, 0b01110000},
	'V':  {0b10001000, 0b10001000, 0b10001000, 0b10001000, 0b01010000, 0b01010000, 0b00100000},
	'W':  {0b10001000, 0b10001000, 0b10001000, 0b10101000, 0b10101000, 0b11011000, 0b10001000},
	'X':  {0b10001000, 0b10001000, 0b01010000, 0b00100000, 0b01010000, 0b10001000, 0b10001000},
	'Y':  {0b10001000, 0b10001000, 0b01010000, 0b00100000, 0b00100000, 0b00100000, 0b00100000},
	'Z':  {0b11111000, 0b00001000, 0b00010000, 0b00100000, 0b01000000, 0b10000000, 0b11111000},
	'0':  {0b01110000, 0b10001000, 0b10011000, 0b10101000, 0b11001000, 0b10001000, 0b01110000},
	'1':  {0b00100000, 0b01100000, 0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b01110000},
	'2':  {0b01110000, 0b10001000, 0b00001000, 0b00010000, 0b00100000, 0b01000000, 0b11111000},
	'3':  {0b11111000, 0b00010000, 0b00100000, 0b00010000, 0b00001000, 0b10001000, 0b01110000},
	'4':  {0b00010000, 0b00110000, 0b01010000, 0b10010000, 0b11111000, 0b00010000, 0b00010000},
	'5':  {0b11111000, 0b10000000, 0b11110000, 0b00001000, 0b00001000, 0b10001000, 0b01110000},
	'6':  {0b00110000, 0b01000000, 0b10000000, 0b11110000, 0b10001000, 0b10001000, 0b01110000},
	'7':  {0b11111000, 0b00001000, 0b00010000, 0b00100000, 0b01000000, 0b01000000, 0b01000000},
	'8':  {0b01110000, 0b10001000, 0b10001000, 0b01110000, 0b10001000, 0b10001000, 0b01110000},
	'9':  {0b01110000, 0b10001000, 0b10001000, 0b01111000, 0b00001000, 0b00010000, 0b01100000},
	':':  {0b00000000, 0b00100000, 0b00100000, 0b00000000, 0b00100000, 0b00100000, 0b00000000},
	'-':  {0b00000000, 0b00000000, 0b00000000, 0b01110000, 0b00000000, 0b00000000, 0b00000000},
	'.':  {0b00000000, 0b00000000, 0b00000000, 0b00000000, 0b00000000, 0b01100000, 0b01100000},
	',':  {0b00000000, 0b00000000, 0b00000000, 0b00000000, 0b00100000, 0b00100000, 0b01000000},
	'!':  {0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b00100000, 0b00000000, 0b00100000},
	'?':  {0b01110000, 0b10001000, 0b00001000, 0b00010000, 0b00100000, 0b00000000, 0b00100000},
	'\'': {0b00100000, 0b00100000, 0b01000000, 0b00000000, 0b00000000, 0b00000000, 0b00000000},
	'/':  {0b00001000, 0b00010000, 0b00010000, 0b00100000, 0b01000000, 0b01000000, 0b10000000},
	'&':  {0b01100000, 0b10010000, 0b10100000, 0b01000000, 0b10101000, 0b10010000, 0b01101000},
	'(':  {0b00010000, 0b00100000, 0b01000000, 0b01000000, 0b01000000, 0b00100000, 0b00010000},
	')':  {0b01000000, 0b00100000, 0b00010000, 0b00010000, 0b00010000, 0b00100000, 0b01000000},
	'%':  {0b11000000, 0b11001000, 0b00010000, 0b00100000, 0b01000000, 0b10011000, 0b00011000},
	'$':  {0b00100000, 0b01111000, 0b10100000, 0b01110000, 0b00101000, 0b11110000, 0b00100000},
	'+':  {0b00000000, 0b00100000, 0b00100000, 0b11111000, 0b00100000, 0b00100000, 0b00000000},
}

// TextWidth returns the pixel width text occupies when drawn, trailing
// spacing included.
func TextWidth(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * CharAdvance
}

// DrawText draws text with its top-left corner at (x, y) and returns the
// pixel width drawn. Characters without a glyph render as blanks; pixels
// falling outside the frame are dropped by the framebuffer.
func (c *Canvas) DrawText(x, y int, text string, col Color) int {
	width, _ := c.fb.Size()
	cx := x
	for _, r := range text {
		if cx >= width {
			cx += CharAdvance
			continue
		}
		if cx+GlyphWidth >= 0 {
			c.drawGlyph(cx, y, r, col)
		}
		cx += CharAdvance
	}
	return cx - x
}

// DrawTextCentered draws text horizontally centered at row y.
func (c *Canvas) DrawTextCentered(y int, text string, col Color) int {
	width, _ := c.fb.Size()
	x := (width - TextWidth(text)) / 2
	return c.DrawText(x, y, text, col)
}

func (c *Canvas) drawGlyph(x, y int, r rune, col Color) {
	glyph, ok := font5x7[unicode.ToUpper(r)]
	if !ok {
		return
	}
	for row := 0; row < GlyphHeight; row++ {
		bits := glyph[row]
		for colIdx := 0; colIdx < GlyphWidth; colIdx++ {
			if bits&(0x80>>colIdx) != 0 {
				c.fb.SetPixel(x+colIdx, y+row, col.R, col.G, col.B)
			}
		}
	}
}
