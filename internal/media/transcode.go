package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxAvatarEdge   = 512
	MaxSourceEdge   = 8000
	MaxUploadBytes  = 5 << 20
	WebPContentType = "image/webp"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrImageTooLarge    = errors.New("image dimensions too large")
)

// ToWebP decodes a jpeg/png/gif/webp image, scales it so the longest edge
// is at most maxEdge and re-encodes it as lossy webp. Sources wider or
// taller than MaxSourceEdge are rejected before any pixel is decoded.
func ToWebP(r io.Reader, maxEdge int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if cfg.Width > MaxSourceEdge || cfg.Height > MaxSourceEdge {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := fit(src, maxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return src
	}

	nw, nh := maxEdge, maxEdge
	if w > h {
		nh = h * maxEdge / w
	} else {
		nw = w * maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
