package folio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	// Decoders for catalog images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageLoader fetches and decodes one catalog image.
type ImageLoader interface {
	Load(ctx context.Context, source string) (image.Image, error)
}

// ImageLoaderFunc adapts a function to ImageLoader.
type ImageLoaderFunc func(ctx context.Context, source string) (image.Image, error)

// Load calls f.
func (f ImageLoaderFunc) Load(ctx context.Context, source string) (image.Image, error) {
	return f(ctx, source)
}

// SourceLoader loads http(s) sources over the network and everything else
// from a file system.
type SourceLoader struct {
	// Client is used for http and https sources. Nil uses a shared client
	// with a 30 second timeout.
	Client *http.Client
	// FS resolves local sources. A leading "/" is stripped, so catalog
	// paths like "/assets/img1.jpeg" resolve against the FS root.
	// Nil uses the working directory.
	FS fs.FS
}

// sharedClient is reused across loads for connection pooling.
var sharedClient = &http.Client{
	Timeout: 30 * time.Second,
}

// NewSourceLoader returns a loader rooted at dir.
func NewSourceLoader(dir string) *SourceLoader {
	return &SourceLoader{FS: os.DirFS(dir)}
}

// Load fetches and decodes source.
func (l *SourceLoader) Load(ctx context.Context, source string) (image.Image, error) {
	var data []byte
	var err error
	if isURL(source) {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = l.read(source)
	}
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return img, nil
}

func (l *SourceLoader) fetch(ctx context.Context, url string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = sharedClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (l *SourceLoader) read(source string) ([]byte, error) {
	fsys := l.FS
	if fsys == nil {
		fsys = os.DirFS(".")
	}
	name := strings.TrimPrefix(strings.TrimPrefix(source, "./"), "/")
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

// isURL reports whether source is an http or https URL.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
