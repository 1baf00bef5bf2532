// Package sprites downloads sprite images referenced by resolved entities.
// Sprite assets sit outside the no-retry contract of catalog resolution, so
// the fetcher is free to retry flaky CDN responses.
package sprites

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/kantodex/kantodex/pkg/dex"
)

type Fetcher struct {
	client *retryablehttp.Client
	dir    string
}

func NewFetcher(dir string) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &Fetcher{client: client, dir: dir}
}

// Save downloads the entity's sprite into the fetcher's directory and
// returns the written path.
func (f *Fetcher) Save(ctx context.Context, e *dex.Entity) (string, error) {
	if e.SpriteURL == "" {
		return "", fmt.Errorf("%s has no sprite", e.Name)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", e.SpriteURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching sprite for %s: %w", e.Name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("fetching sprite for %s: status %d", e.Name, resp.StatusCode)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(f.dir, fmt.Sprintf("%03d-%s.png", e.ID, e.Name))
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", err
	}
	return path, nil
}
