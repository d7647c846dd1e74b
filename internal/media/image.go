package media

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Profile photos are square-ish thumbnails; anything bigger than this
	// is wasted bandwidth on the booking page.
	maxEdge = 512

	webpQuality = 85
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// ProcessProfilePhoto decodes an uploaded image (jpeg, png or webp),
// downscales it so the longest edge is at most 512px and re-encodes it as
// webp. Returns the encoded bytes ready for object storage.
func ProcessProfilePhoto(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func init() {
	// webp uploads are decodable too, not just the output format
	image.RegisterFormat("webp", "RIFF????WEBPVP8", webpDecode, webpDecodeConfig)
}

func webpDecode(r io.Reader) (image.Image, error) {
	return webp.Decode(r)
}

func webpDecodeConfig(r io.Reader) (image.Config, error) {
	return webp.DecodeConfig(r)
}
