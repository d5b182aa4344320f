package folio

import (
	"errors"
	"image"
	"testing"
)

func smallLabelConfig() Config {
	cfg := DefaultConfig()
	cfg.LabelWidth, cfg.LabelHeight = 400, 40
	cfg.LabelFontSize = 24
	cfg.LabelMargin = 10
	return cfg
}

// inkColumns returns the leftmost and rightmost columns with any alpha.
func inkColumns(img *image.RGBA) (left, right int) {
	left, right = -1, -1
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if img.RGBAAt(x, y).A > 0 {
				if left < 0 {
					left = x
				}
				right = x
				break
			}
		}
	}
	return left, right
}

func TestLabelRendererLayout(t *testing.T) {
	cfg := smallLabelConfig()
	lr, err := NewLabelRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer lr.Close()

	if w, h := lr.Size(); w != 400 || h != 40 {
		t.Fatalf("Size = %dx%d", w, h)
	}

	img := lr.Render(Item{Title: "Motion Study", Year: 2024})
	if img.Bounds() != image.Rect(0, 0, 400, 40) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	left, right := inkColumns(img)
	if left < 0 {
		t.Fatal("label has no ink")
	}
	if left < cfg.LabelMargin-2 || left > cfg.LabelMargin+12 {
		t.Errorf("title starts at column %d, want near margin %d", left, cfg.LabelMargin)
	}
	if right > 400-cfg.LabelMargin+1 || right < 400-cfg.LabelMargin-12 {
		t.Errorf("year ends at column %d, want near %d", right, 400-cfg.LabelMargin)
	}

	// The middle of the strip between title and year is empty.
	for y := 0; y < 40; y++ {
		if img.RGBAAt(280, y).A != 0 {
			t.Fatalf("unexpected ink at (280, %d)", y)
		}
	}
}

func TestLabelRendererUppercases(t *testing.T) {
	lr, err := NewLabelRenderer(smallLabelConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer lr.Close()

	lower := lr.Render(Item{Title: "idle form", Year: 2023})
	upper := lr.Render(Item{Title: "IDLE FORM", Year: 2023})
	if string(lower.Pix) != string(upper.Pix) {
		t.Error("lowercase and uppercase titles render differently")
	}
}

func TestLabelRendererTextColor(t *testing.T) {
	cfg := smallLabelConfig()
	lr, err := NewLabelRenderer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer lr.Close()

	img := lr.Render(Item{Title: "HHHH", Year: 1111})
	want := cfg.TextColor.toRGBA()
	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 255 {
			if img.Pix[i] != want.R || img.Pix[i+1] != want.G || img.Pix[i+2] != want.B {
				t.Fatalf("opaque pixel = %v, want %v", img.Pix[i:i+4], want)
			}
			found = true
		}
	}
	if !found {
		t.Error("no fully covered pixel found")
	}
}

func TestNewLabelRendererBadFont(t *testing.T) {
	_, err := NewLabelRendererFont(DefaultConfig(), []byte("not a font"))
	if !errors.Is(err, ErrNoRaster) {
		t.Errorf("err = %v, want ErrNoRaster", err)
	}
}

func TestNewLabelRendererBadCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LabelWidth = 0
	if _, err := NewLabelRenderer(cfg); !errors.Is(err, ErrNoRaster) {
		t.Errorf("err = %v, want ErrNoRaster", err)
	}
}
