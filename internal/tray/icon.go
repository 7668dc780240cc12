package tray

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
)

// ErrIconUnavailable is returned when no tray icon image could be produced.
var ErrIconUnavailable = errors.New("tray icon unavailable")

// LoadIcon decodes the icon at path. BMP, PNG and JPEG are accepted.
func LoadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Placeholder returns a size×size square filled with c.
func Placeholder(size int, c color.NRGBA) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("placeholder size %d: %w", size, ErrIconUnavailable)
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img, nil
}

// ResolveIcon loads the icon at path, falling back to a solid placeholder in
// the main color. It returns nil when both fail; the caller then runs
// without a tray.
func ResolveIcon(path string) image.Image {
	img, err := LoadIcon(path)
	if err == nil {
		return img
	}
	logging.Logger().Warn("tray icon not loaded, using placeholder", "path", path, "err", err)

	img, err = Placeholder(config.TrayIconSize, config.ColorMain)
	if err != nil {
		logging.Logger().Warn("placeholder icon failed", "err", err)
		return nil
	}
	return img
}

// icoMaxSize is the largest edge an ICO entry can hold.
const icoMaxSize = 256

// Encode serializes img for the tray: ICO on Windows, PNG elsewhere.
func Encode(img image.Image, goos string) ([]byte, error) {
	if img == nil {
		return nil, ErrIconUnavailable
	}
	var buf bytes.Buffer
	if goos == "windows" {
		if err := ico.Encode(&buf, fitIcon(img, icoMaxSize)); err != nil {
			return nil, fmt.Errorf("encode icon: %w", err)
		}
		return buf.Bytes(), nil
	}
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

// fitIcon scales img down to fit in a limit×limit square, keeping its aspect.
func fitIcon(img image.Image, limit int) image.Image {
	b := img.Bounds()
	if b.Dx() <= limit && b.Dy() <= limit {
		return img
	}
	w, h := limit, limit
	if b.Dx() > b.Dy() {
		h = b.Dy() * limit / b.Dx()
	} else {
		w = b.Dx() * limit / b.Dy()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
