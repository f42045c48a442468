// Package download saves full-resolution wallpaper files to disk. It is a
// thin layer over the wallhaven client: the client finds wallpapers, this
// package fetches their image files, optionally several at a time.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
	"github.com/dixieflatline76/wallhaven/util/log"
)

// DefaultWorkers is the concurrent fetch limit used when FetchAll is given
// a non-positive worker count.
const DefaultWorkers = 4

// Downloader fetches wallpaper image files over HTTP.
type Downloader struct {
	httpClient *http.Client
}

// New creates a Downloader. A nil client gets a default with a generous
// timeout, since full wallpapers can run to several megabytes.
func New(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Downloader{httpClient: client}
}

// Fetch downloads the full image of w into dir and returns the path of the
// written file. An already-present file is left alone and its path returned,
// so re-running a fetch is cheap.
func (d *Downloader) Fetch(ctx context.Context, w wallhaven.Wallpaper, dir string) (string, error) {
	name := fileName(w)
	if name == "" {
		return "", fmt.Errorf("wallpaper %s has no usable path", w.ID)
	}
	target := filepath.Join(dir, name)

	if _, err := os.Stat(target); err == nil {
		log.Debugf("skipping %s, already downloaded", target)
		return target, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.Path, nil)
	if err != nil {
		return "", err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", w.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: status %d", w.ID, resp.StatusCode)
	}

	// Write to a temp name first so an interrupted download never leaves a
	// half-written file under the final name.
	tmp := target + ".part"
	file, err := os.Create(tmp)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", err
	}

	return target, nil
}

// FetchAll downloads every wallpaper into dir, at most workers at a time.
// It returns the written paths in the order of the input slice. The first
// failure cancels the remaining fetches.
func (d *Downloader) FetchAll(ctx context.Context, wallpapers []wallhaven.Wallpaper, dir string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	paths := make([]string, len(wallpapers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, w := range wallpapers {
		i, w := i, w
		g.Go(func() error {
			path, err := d.Fetch(ctx, w, dir)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// fileName derives the on-disk file name for a wallpaper from its path URL,
// falling back to the wallpaper ID plus an extension from the file type.
func fileName(w wallhaven.Wallpaper) string {
	if idx := strings.LastIndex(w.Path, "/"); idx >= 0 && idx < len(w.Path)-1 {
		return w.Path[idx+1:]
	}
	if w.ID == "" {
		return ""
	}
	ext := ".jpg"
	if w.FileType == "image/png" {
		ext = ".png"
	}
	return w.ID + ext
}
