package storage

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

const webpQuality = 80

// NormalizeToWebP decodes a JPEG, PNG or WebP image, scales it down to
// maxWidth when wider, and re-encodes it as WebP.
func NormalizeToWebP(r io.Reader, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_image")
	}

	b := src.Bounds()
	if maxWidth > 0 && b.Dx() > maxWidth {
		h := b.Dy() * maxWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Uploader converts images and stores them under random keys.
type Uploader struct {
	store    ImageStore
	maxWidth int
}

func NewUploader(store ImageStore, maxWidth int) *Uploader {
	return &Uploader{store: store, maxWidth: maxWidth}
}

// Upload returns the public URL and the key to delete the object with.
func (u *Uploader) Upload(ctx context.Context, folder string, r io.Reader) (url, key string, err error) {
	data, err := NormalizeToWebP(r, u.maxWidth)
	if err != nil {
		return "", "", err
	}

	key = path.Join(folder, uuid.NewString()+".webp")
	url, err = u.store.Put(ctx, key, "image/webp", bytes.NewReader(data))
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

func (u *Uploader) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return u.store.Delete(ctx, key)
}
