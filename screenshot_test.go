package folio

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drag", "after-drag"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	a := NewApp("gallery", 10, 10)
	a.Screenshot("a")
	a.Screenshot("b")
	a.Screenshot("c")
	if len(a.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(a.screenshotQueue))
	}
	if a.screenshotQueue[0] != "a" || a.screenshotQueue[1] != "b" || a.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", a.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	a := NewApp("gallery", 10, 10)
	if a.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", a.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{255, 127, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWriteAtlasPNG(t *testing.T) {
	rasters := []image.Image{solidImage(2, 2, itemColor(3)), nil, solidImage(2, 2, itemColor(5))}
	a := ComposeAtlas(AtlasImages, rasters, 4)
	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := WriteAtlasPNG(path, a); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("bounds = %v, want 8x8", img.Bounds())
	}

	if err := WriteAtlasPNG(path, nil); err == nil {
		t.Error("nil atlas accepted")
	}
}
