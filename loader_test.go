package folio

import (
	"context"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestSourceLoaderFS(t *testing.T) {
	data := encodePNG(t, solidImage(3, 2, itemColor(4)))
	l := &SourceLoader{FS: fstest.MapFS{"assets/img1.png": {Data: data}}}

	for _, src := range []string{"/assets/img1.png", "assets/img1.png", "./assets/img1.png"} {
		img, err := l.Load(context.Background(), src)
		if err != nil {
			t.Fatalf("Load(%q): %v", src, err)
		}
		if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
			t.Errorf("Load(%q) bounds = %v", src, b)
		}
		if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got != itemColor(4) {
			t.Errorf("Load(%q) pixel = %v, want %v", src, got, itemColor(4))
		}
	}
}

func TestSourceLoaderErrors(t *testing.T) {
	l := &SourceLoader{FS: fstest.MapFS{"bad.png": {Data: []byte("garbage")}}}
	tests := []struct {
		src  string
		want string
	}{
		{"/missing.png", "read /missing.png"},
		{"/bad.png", "decode /bad.png"},
	}
	for _, tt := range tests {
		_, err := l.Load(context.Background(), tt.src)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Load(%q) err = %v, want containing %q", tt.src, err, tt.want)
		}
	}
}

func TestSourceLoaderHTTP(t *testing.T) {
	data := encodePNG(t, solidImage(5, 5, itemColor(9)))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/img.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l := &SourceLoader{Client: srv.Client()}
	img, err := l.Load(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 5 {
		t.Errorf("bounds = %v", img.Bounds())
	}

	_, err = l.Load(context.Background(), srv.URL+"/nope.png")
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("missing URL err = %v, want HTTP 404", err)
	}
}

func TestSourceLoaderHTTPCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := &SourceLoader{Client: srv.Client()}
	if _, err := l.Load(ctx, srv.URL+"/slow.png"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"http://example.com/a.png", true},
		{"https://example.com/a.png", true},
		{"/assets/a.png", false},
		{"ftp://example.com/a.png", false},
		{"httpfoo", false},
	}
	for _, tt := range tests {
		if got := isURL(tt.in); got != tt.want {
			t.Errorf("isURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
