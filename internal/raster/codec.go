package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Decode decodes PNG, JPEG, BMP, or GIF bytes into a Raster. The result
// is always RGBA8; sources without alpha come out fully opaque.
func Decode(data []byte) (*Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// EncodePNG encodes a raster as PNG bytes.
func EncodePNG(r *Raster) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.ToImage()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFile reads and decodes an image file.
func LoadFile(path string) (*Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return Decode(data)
}

// SaveFile encodes a raster as PNG and writes it to path.
func SaveFile(path string, r *Raster) error {
	data, err := EncodePNG(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
