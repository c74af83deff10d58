package ioutils

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/draw"
)

// ImageFormat is an output encoding for rendered images.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// ErrUnsupportedFormat is returned for file extensions other than .png,
// .jpg and .jpeg.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	default:
		return "png"
	}
}

// FormatForPath picks the format from the file extension.
//
// Example:
//
//	FormatForPath("scene.png")  // FormatPNG
//	FormatForPath("scene.JPG")  // FormatJPEG
//	FormatForPath("scene.webp") // ErrUnsupportedFormat
func FormatForPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	}
	return 0, errors.WithHint(
		errors.Wrapf(ErrUnsupportedFormat, "%q", filepath.Ext(path)),
		"use a .png, .jpg or .jpeg file name")
}

// Downscale resizes src to exactly width x height.
//
// The Catmull-Rom algorithm is used for high-quality resizing, which makes
// it suitable for reducing a supersampled render.
func Downscale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// EncodeImage writes img to w in the given format. JPEG uses 90% quality.
func EncodeImage(w io.Writer, img image.Image, format ImageFormat) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(w, img)
	}
}
