// Package terminal renders the panel framebuffer as ANSI half-blocks, two
// panel rows per terminal line. It is the default driver for development
// machines without an LED matrix attached.
package terminal

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Driver is a render.Framebuffer backed by a terminal.
type Driver struct {
	width  int
	height int
	out    io.Writer

	mu   sync.Mutex
	back []byte // RGB triples, back buffer mutated by draws
}

// New builds a terminal driver. A nil writer defaults to stdout.
func New(width, height int, out io.Writer) *Driver {
	if out == nil {
		out = os.Stdout
	}
	d := &Driver{
		width:  width,
		height: height,
		out:    out,
		back:   make([]byte, width*height*3),
	}
	io.WriteString(out, clearScreen+hideCursor)
	return d
}

// Close restores the cursor.
func (d *Driver) Close() error {
	_, err := io.WriteString(d.out, showCursor)
	return err
}

func (d *Driver) Size() (int, int) { return d.width, d.height }

func (d *Driver) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.mu.Lock()
	i := (y*d.width + x) * 3
	d.back[i], d.back[i+1], d.back[i+2] = r, g, b
	d.mu.Unlock()
}

func (d *Driver) Fill(r, g, b uint8) {
	d.mu.Lock()
	for i := 0; i < len(d.back); i += 3 {
		d.back[i], d.back[i+1], d.back[i+2] = r, g, b
	}
	d.mu.Unlock()
}

func (d *Driver) Clear() { d.Fill(0, 0, 0) }

// Swap paints the buffer to the terminal. Each character cell shows two
// vertically stacked pixels via the upper-half-block glyph.
func (d *Driver) Swap() error {
	d.mu.Lock()
	frame := make([]byte, len(d.back))
	copy(frame, d.back)
	d.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(cursorHome)
	for y := 0; y < d.height; y += 2 {
		for x := 0; x < d.width; x++ {
			top := d.at(frame, x, y)
			bottom := color.RGB(0, 0, 0, true)
			if y+1 < d.height {
				tr, tg, tb := d.rgb(frame, x, y+1)
				bottom = color.RGB(tr, tg, tb, true)
			}
			style := color.NewRGBStyle(top, bottom)
			sb.WriteString(style.Sprint("▀"))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(d.out, sb.String())
	return err
}

func (d *Driver) at(frame []byte, x, y int) color.RGBColor {
	r, g, b := d.rgb(frame, x, y)
	return color.RGB(r, g, b)
}

func (d *Driver) rgb(frame []byte, x, y int) (uint8, uint8, uint8) {
	i := (y*d.width + x) * 3
	return frame[i], frame[i+1], frame[i+2]
}
