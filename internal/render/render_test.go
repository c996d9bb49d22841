package render

import (
	"testing"

	"cubs-led-scoreboard/internal/teststubs"
)

func TestTextWidthUsesFixedAdvance(t *testing.T) {
	if got := TextWidth(""); got != 0 {
		t.Fatalf("TextWidth(\"\") = %d, want 0", got)
	}
	if got := TextWidth("ABC"); got != 3*CharAdvance {
		t.Fatalf("TextWidth(ABC) = %d, want %d", got, 3*CharAdvance)
	}
	if got := TextWidth("GO CUBS GO"); got != 10*CharAdvance {
		t.Fatalf("TextWidth = %d, want %d", got, 10*CharAdvance)
	}
}

func TestDrawTextReturnsAdvance(t *testing.T) {
	fb := teststubs.NewStubFramebuffer(96, 48)
	canvas := NewCanvas(fb)

	width := canvas.DrawText(0, 0, "CUBS", White)
	if width != 4*CharAdvance {
		t.Fatalf("DrawText width = %d, want %d", width, 4*CharAdvance)
	}
	if fb.PixelCount() == 0 {
		t.Fatal("DrawText wrote no pixels")
	}
}

func TestDrawTextFoldsLowercase(t *testing.T) {
	upper := teststubs.NewStubFramebuffer(96, 48)
	lower := teststubs.NewStubFramebuffer(96, 48)

	NewCanvas(upper).DrawText(0, 0, "CUBS", White)
	NewCanvas(lower).DrawText(0, 0, "cubs", White)

	if upper.PixelCount() != lower.PixelCount() {
		t.Fatalf("pixel counts differ: %d vs %d", upper.PixelCount(), lower.PixelCount())
	}
}

func TestDrawTextClipsOffscreen(t *testing.T) {
	fb := teststubs.NewStubFramebuffer(96, 48)
	canvas := NewCanvas(fb)

	// Entirely right of the frame: nothing drawn, advance still reported.
	width := canvas.DrawText(200, 0, "AB", White)
	if width != 2*CharAdvance {
		t.Fatalf("offscreen width = %d, want %d", width, 2*CharAdvance)
	}
	if fb.PixelCount() != 0 {
		t.Fatalf("offscreen draw wrote %d pixels", fb.PixelCount())
	}
}

func TestDrawTextCenteredIsSymmetric(t *testing.T) {
	fb := teststubs.NewStubFramebuffer(96, 48)
	canvas := NewCanvas(fb)

	canvas.DrawTextCentered(10, "HH", White)

	minX, maxX := 96, 0
	for _, p := range fb.Pixels {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	// Centering tolerance of one pixel for odd widths.
	left := minX
	right := 96 - 1 - maxX
	if diff := left - right; diff < -CharSpacing || diff > CharSpacing {
		t.Fatalf("text not centered: left margin %d, right margin %d", left, right)
	}
}

func TestCursorScrollsAndWraps(t *testing.T) {
	textWidth := TextWidth("ABC") // 21 pixels
	c := NewCursor(96, textWidth)

	if c.Position() != 96 {
		t.Fatalf("start position = %d, want 96", c.Position())
	}

	wrapped := false
	ticks := 0
	for !wrapped {
		c, wrapped = c.Advance(1)
		ticks++
		if ticks > 1000 {
			t.Fatal("cursor never wrapped")
		}
	}

	// The text leaves the frame once position + width drops below zero:
	// 96 + 21 + 1 steps of one pixel.
	if want := 96 + textWidth + 1; ticks != want {
		t.Fatalf("wrapped after %d ticks, want %d", ticks, want)
	}
	if c.Position() != 96 {
		t.Fatalf("position after wrap = %d, want 96", c.Position())
	}
}

func TestCursorLargeStep(t *testing.T) {
	c := NewCursor(96, 14)
	c, wrapped := c.Advance(200)
	if !wrapped {
		t.Fatal("large step did not wrap")
	}
	if c.Position() != 96 {
		t.Fatalf("position = %d, want 96", c.Position())
	}
}

func TestHLineDrawsInclusiveRange(t *testing.T) {
	fb := teststubs.NewStubFramebuffer(96, 48)
	canvas := NewCanvas(fb)

	canvas.HLine(3, 7, 14, CubsBlue)
	if fb.PixelCount() != 5 {
		t.Fatalf("pixel count = %d, want 5", fb.PixelCount())
	}
	for _, p := range fb.Pixels {
		if p.Y != 14 {
			t.Fatalf("pixel at y=%d, want 14", p.Y)
		}
	}
}
