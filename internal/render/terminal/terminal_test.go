package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestSwapPaintsHalfBlocks(t *testing.T) {
	var out bytes.Buffer
	d := New(4, 4, &out)
	out.Reset() // drop the init escape codes

	d.SetPixel(0, 0, 255, 0, 0)
	if err := d.Swap(); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, cursorHome) {
		t.Fatal("frame does not home the cursor")
	}
	// 4x4 pixels paint as two terminal lines.
	if lines := strings.Count(got, "\n"); lines != 2 {
		t.Fatalf("line count = %d, want 2", lines)
	}
	if !strings.Contains(got, "▀") {
		t.Fatal("frame contains no half-block glyphs")
	}
}

func TestSetPixelIgnoresOutOfBounds(t *testing.T) {
	d := New(2, 2, &bytes.Buffer{})
	d.SetPixel(-1, 0, 1, 2, 3)
	d.SetPixel(0, -1, 1, 2, 3)
	d.SetPixel(2, 0, 1, 2, 3)
	d.SetPixel(0, 2, 1, 2, 3)

	for i, b := range d.back {
		if b != 0 {
			t.Fatalf("buffer byte %d = %d after out-of-bounds writes", i, b)
		}
	}
}

func TestFillAndClear(t *testing.T) {
	d := New(2, 2, &bytes.Buffer{})
	d.Fill(9, 8, 7)
	if d.back[0] != 9 || d.back[1] != 8 || d.back[2] != 7 {
		t.Fatalf("first pixel = %v, want 9 8 7", d.back[:3])
	}
	d.Clear()
	for i, b := range d.back {
		if b != 0 {
			t.Fatalf("buffer byte %d = %d after Clear", i, b)
		}
	}
}
