package image

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path into a non-premultiplied RGBA buffer.
// PNG, JPEG, GIF and WebP are supported.
func Load(path string) (*image.NRGBA, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, e)
	}

	return ToNRGBA(i), nil
}

// ToNRGBA returns i as an *image.NRGBA, converting it if needed.
func ToNRGBA(i image.Image) *image.NRGBA {
	if n, ok := i.(*image.NRGBA); ok {
		return n
	}
	b := i.Bounds()
	n := image.NewNRGBA(b)
	draw.Draw(n, b, i, b.Min, draw.Src)
	return n
}

// Fit scales i down so that neither side exceeds size pixels, keeping the
// aspect ratio. Images already small enough, or a size <= 0, are returned
// as is.
func Fit(i *image.NRGBA, size int) *image.NRGBA {
	b := i.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || (w <= size && h <= size) {
		return i
	}
	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), i, b, draw.Src, nil)
	return dst
}

// Save encodes i to path. The format follows the extension: .jpg and .jpeg
// produce JPEG, anything else PNG.
func Save(path string, i image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, i, &jpeg.Options{Quality: 95})
	default:
		err = png.Encode(f, i)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
