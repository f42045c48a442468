package download

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
)

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/full/wallhaven-94x38z.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	d := New(nil)

	wp := wallhaven.Wallpaper{ID: "94x38z", Path: ts.URL + "/full/wallhaven-94x38z.png"}
	path, err := d.Fetch(context.Background(), wp, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wallhaven-94x38z.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFetchSkipsExisting(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("fresh"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	existing := filepath.Join(dir, "wallhaven-aaaaaa.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("stale"), 0644))

	d := New(nil)
	wp := wallhaven.Wallpaper{ID: "aaaaaa", Path: ts.URL + "/full/wallhaven-aaaaaa.jpg"}
	path, err := d.Fetch(context.Background(), wp, dir)
	require.NoError(t, err)
	assert.Equal(t, existing, path)
	assert.Zero(t, calls.Load())

	data, _ := os.ReadFile(path)
	assert.Equal(t, "stale", string(data))
}

func TestFetchServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	d := New(nil)
	wp := wallhaven.Wallpaper{ID: "bbbbbb", Path: ts.URL + "/full/wallhaven-bbbbbb.jpg"}
	_, err := d.Fetch(context.Background(), wp, t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchAll(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "contents of %s", r.URL.Path)
	}))
	defer ts.Close()

	wallpapers := make([]wallhaven.Wallpaper, 6)
	for i := range wallpapers {
		wallpapers[i] = wallhaven.Wallpaper{
			ID:   fmt.Sprintf("id%02d", i),
			Path: fmt.Sprintf("%s/full/wallhaven-id%02d.jpg", ts.URL, i),
		}
	}

	dir := t.TempDir()
	d := New(nil)
	paths, err := d.FetchAll(context.Background(), wallpapers, dir, 3)
	require.NoError(t, err)
	require.Len(t, paths, 6)

	// Order matches the input slice.
	for i, path := range paths {
		assert.Equal(t, filepath.Join(dir, fmt.Sprintf("wallhaven-id%02d.jpg", i)), path)
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestFetchAllPropagatesFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/full/wallhaven-cccccc.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	wallpapers := []wallhaven.Wallpaper{
		{ID: "dddddd", Path: ts.URL + "/full/wallhaven-dddddd.jpg"},
		{ID: "cccccc", Path: ts.URL + "/full/wallhaven-cccccc.jpg"},
	}

	d := New(nil)
	_, err := d.FetchAll(context.Background(), wallpapers, t.TempDir(), 2)
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		wp   wallhaven.Wallpaper
		want string
	}{
		{
			name: "from path URL",
			wp:   wallhaven.Wallpaper{ID: "94x38z", Path: "https://w.wallhaven.cc/full/94/wallhaven-94x38z.png"},
			want: "wallhaven-94x38z.png",
		},
		{
			name: "fallback to ID with png type",
			wp:   wallhaven.Wallpaper{ID: "94x38z", FileType: "image/png"},
			want: "94x38z.png",
		},
		{
			name: "fallback to ID with jpeg type",
			wp:   wallhaven.Wallpaper{ID: "94x38z", FileType: "image/jpeg"},
			want: "94x38z.jpg",
		},
		{
			name: "nothing usable",
			wp:   wallhaven.Wallpaper{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileName(tt.wp))
		})
	}
}
