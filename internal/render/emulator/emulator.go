// Package emulator shows the panel framebuffer in a desktop window, scaled
// up so individual LEDs stay visible. Useful for layout work away from the
// real matrix.
package emulator

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScale = 8

// Driver is a render.Framebuffer backed by an Ebiten window. Draw calls
// mutate a back buffer; Swap publishes it to the frame the window shows.
type Driver struct {
	width  int
	height int
	scale  int

	mu    sync.Mutex
	back  []byte // RGBA
	front []byte

	tex *ebiten.Image
	ctx context.Context
}

// New builds an emulator driver. Scale <= 0 uses the default.
func New(width, height, scale int) *Driver {
	if scale <= 0 {
		scale = defaultScale
	}
	return &Driver{
		width:  width,
		height: height,
		scale:  scale,
		back:   make([]byte, width*height*4),
		front:  make([]byte, width*height*4),
	}
}

func (d *Driver) Size() (int, int) { return d.width, d.height }

func (d *Driver) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.mu.Lock()
	i := (y*d.width + x) * 4
	d.back[i], d.back[i+1], d.back[i+2], d.back[i+3] = r, g, b, 0xff
	d.mu.Unlock()
}

func (d *Driver) Fill(r, g, b uint8) {
	d.mu.Lock()
	for i := 0; i < len(d.back); i += 4 {
		d.back[i], d.back[i+1], d.back[i+2], d.back[i+3] = r, g, b, 0xff
	}
	d.mu.Unlock()
}

func (d *Driver) Clear() { d.Fill(0, 0, 0) }

func (d *Driver) Swap() error {
	d.mu.Lock()
	copy(d.front, d.back)
	d.mu.Unlock()
	return nil
}

// Run opens the window and blocks until the context is cancelled or the
// window is closed. Must be called from the main goroutine.
func (d *Driver) Run(ctx context.Context) error {
	d.ctx = ctx
	ebiten.SetWindowSize(d.width*d.scale, d.height*d.scale)
	ebiten.SetWindowTitle("Cubs Scoreboard")
	err := ebiten.RunGame(d)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game. The render loop runs elsewhere; the window
// only needs to notice shutdown.
func (d *Driver) Update() error {
	if d.ctx != nil && d.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game, blitting the published frame scaled up.
func (d *Driver) Draw(screen *ebiten.Image) {
	if d.tex == nil {
		d.tex = ebiten.NewImage(d.width, d.height)
	}
	d.mu.Lock()
	frame := make([]byte, len(d.front))
	copy(frame, d.front)
	d.mu.Unlock()

	d.tex.WritePixels(frame)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(d.scale), float64(d.scale))
	screen.DrawImage(d.tex, opts)
}

// Layout implements ebiten.Game.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width * d.scale, d.height * d.scale
}
