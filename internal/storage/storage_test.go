package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeToWebP(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"downscales wide image", 200, 100, 50, 50, 25},
		{"keeps narrow image", 40, 30, 50, 40, 30},
		{"no limit", 120, 60, 0, 120, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NormalizeToWebP(bytes.NewReader(pngOf(t, tt.w, tt.h)), tt.max)
			if err != nil {
				t.Fatalf("NormalizeToWebP() error = %v", err)
			}

			cfg, err := webp.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not webp: %v", err)
			}
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNormalizeToWebPRejectsGarbage(t *testing.T) {
	_, err := NormalizeToWebP(strings.NewReader("definitely not an image"), 100)
	if !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("error = %v, want invalid_image", err)
	}
}

func TestUploaderWithLocalStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	up := NewUploader(store, 64)
	ctx := context.Background()

	url, key, err := up.Upload(ctx, "room-types/3", bytes.NewReader(pngOf(t, 100, 100)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if !strings.HasPrefix(key, "room-types/3/") || !strings.HasSuffix(key, ".webp") {
		t.Errorf("key = %q", key)
	}
	if url != "http://localhost:8080/uploads/"+key {
		t.Errorf("url = %q", url)
	}

	full := filepath.Join(dir, filepath.FromSlash(key))
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	if err := up.Remove(ctx, key); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove: %v", err)
	}
	if err := up.Remove(ctx, key); err != nil {
		t.Errorf("second Remove() error = %v, want nil", err)
	}
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://x")
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"../etc/passwd", "a/../../b", ""} {
		if _, err := store.Put(context.Background(), key, "image/webp", strings.NewReader("x")); err == nil {
			t.Errorf("Put(%q) succeeded, want error", key)
		}
	}
}

func TestS3PublicURL(t *testing.T) {
	tests := []struct {
		cfg  S3Config
		want string
	}{
		{S3Config{Bucket: "cats", Region: "ap-southeast-1"}, "https://cats.s3.ap-southeast-1.amazonaws.com"},
		{S3Config{Bucket: "cats", Endpoint: "http://minio:9000/"}, "http://minio:9000/cats"},
		{S3Config{Bucket: "cats", PublicURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
	}
	for _, tt := range tests {
		if got := publicURL(tt.cfg); got != tt.want {
			t.Errorf("publicURL(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}
