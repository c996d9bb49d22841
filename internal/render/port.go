package render

// Framebuffer is the pixel sink a display driver exposes. Coordinates are
// top-left origin; implementations must ignore out-of-bounds writes.
type Framebuffer interface {
	Size() (width, height int)
	SetPixel(x, y int, r, g, b uint8)
	Fill(r, g, b uint8)
	Clear()
	Swap() error
}

// Color is an RGB triple at full driver depth.
type Color struct {
	R, G, B uint8
}

// Palette used across the screens. CubsBlue and CubsRed match the club
// colors as closely as the panel renders them.
var (
	White    = Color{255, 255, 255}
	Red      = Color{255, 0, 0}
	Green    = Color{0, 255, 0}
	Yellow   = Color{255, 255, 0}
	Grey     = Color{128, 128, 128}
	CubsBlue = Color{14, 51, 134}
	CubsRed  = Color{204, 52, 51}
)

// Canvas layers text and line drawing over a raw framebuffer.
type Canvas struct {
	fb Framebuffer
}

// NewCanvas wraps a framebuffer.
func NewCanvas(fb Framebuffer) *Canvas {
	return &Canvas{fb: fb}
}

// Size returns the framebuffer dimensions.
func (c *Canvas) Size() (int, int) { return c.fb.Size() }

// Clear blanks the frame.
func (c *Canvas) Clear() { c.fb.Clear() }

// Fill floods the frame with one color.
func (c *Canvas) Fill(col Color) { c.fb.Fill(col.R, col.G, col.B) }

// SetPixel writes one pixel.
func (c *Canvas) SetPixel(x, y int, col Color) {
	c.fb.SetPixel(x, y, col.R, col.G, col.B)
}

// HLine draws a horizontal line from x1 to x2 inclusive.
func (c *Canvas) HLine(x1, x2, y int, col Color) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.fb.SetPixel(x, y, col.R, col.G, col.B)
	}
}

// Swap presents the frame.
func (c *Canvas) Swap() error { return c.fb.Swap() }
