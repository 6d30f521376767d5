package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase/interfaces"
)

// HTTPImageResolver fetches picture bytes from a URL or a shipped asset
// path, decodes them and re-encodes to PNG for embedding.
//
// Resolved bitmaps are cached keyed by catalog name and path, so
// re-selecting a picture costs nothing and a re-registered name with a
// new path misses the cache naturally.
type HTTPImageResolver struct {
	client    *http.Client
	assetsDir string

	mu    sync.Mutex
	cache map[string]*entities.Bitmap
}

var _ interfaces.IImageResolver = (*HTTPImageResolver)(nil)

func NewHTTPImageResolver(assetsDir string) *HTTPImageResolver {
	return &HTTPImageResolver{
		client:    http.DefaultClient,
		assetsDir: assetsDir,
		cache:     make(map[string]*entities.Bitmap),
	}
}

func (r *HTTPImageResolver) Resolve(ctx context.Context, name, path string) (*entities.Bitmap, error) {
	key := name + "|" + path

	r.mu.Lock()
	cached := r.cache[key]
	r.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	raw, err := r.fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode %q: %w", path, err)
	}

	b := img.Bounds()
	bm := &entities.Bitmap{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		PNG:    buf.Bytes(),
	}

	r.mu.Lock()
	r.cache[key] = bm
	r.mu.Unlock()
	return bm, nil
}

func (r *HTTPImageResolver) fetch(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(filepath.Join(r.assetsDir, filepath.FromSlash(strings.TrimPrefix(path, "/"))))
}
