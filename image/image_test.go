package image

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 77, A: uint8(255 - x)})
		}
	}
	return img
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := gradient(12, 7)
	if err := Save(path, img); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			if g, w := got.NRGBAAt(x, y), img.NRGBAAt(x, y); g != w {
				t.Errorf("(%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestSaveJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.JPG")
	if err := Save(path, gradient(16, 16)); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", got.Bounds())
	}
}

func TestLoadConvertsPaletted(t *testing.T) {
	pal := color.Palette{color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	src.SetColorIndex(1, 0, 1)

	path := filepath.Join(t.TempDir(), "in.gif")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := gif.Encode(f, src, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("(0, 0) = %v, want red", c)
	}
	if c := got.NRGBAAt(1, 0); c != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("(1, 0) = %v, want blue", c)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(junk); err == nil {
		t.Error("Load of a corrupt file succeeded")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h, size int
		wantW      int
		wantH      int
	}{
		{"no limit", 40, 20, 0, 40, 20},
		{"already small", 40, 20, 50, 40, 20},
		{"landscape", 40, 20, 10, 10, 5},
		{"portrait", 20, 40, 10, 5, 10},
		{"thin", 100, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(gradient(tt.w, tt.h), tt.size)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("Fit = %v, want %dx%d", got.Bounds(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRankColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	img.SetNRGBA(2, 0, red)
	img.SetNRGBA(3, 0, color.NRGBA{R: 9})

	m := GetColors(img)
	if len(m) != 2 {
		t.Fatalf("GetColors found %d colors, want 2 (transparent skipped)", len(m))
	}
	ranked := RankColors(m)
	if ranked[0].Color != red || ranked[0].Count != 2 || ranked[1].Color != blue {
		t.Errorf("RankColors = %+v", ranked)
	}
}
