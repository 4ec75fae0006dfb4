package picture

import (
	"bytes"
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

// PixelType selects a Bitmap's storage format (§4.3).
type PixelType int

const (
	Pixel1Bit PixelType = iota
	Pixel8BitIndexed
	Pixel24BitRGB
)

// Bitmap is a two-dimensional pixel array in one of three storage
// formats. For Pixel1Bit, Data holds one bit per pixel, MSB first,
// each row padded to a byte boundary (the common packed-bitmap
// convention). For Pixel8BitIndexed, Data holds one byte per pixel,
// indexing Palette. For Pixel24BitRGB, Data holds 3 bytes per pixel.
type Bitmap struct {
	Width, Height int
	Type          PixelType
	Data          []byte
	Palette       []doctypes.Color // Pixel8BitIndexed only
}

func (b Bitmap) rowBytes1Bit() int {
	return (b.Width + 7) / 8
}

// AsPNM emits a binary PNM: P4 for 1-bit, P6 for indexed (resolved via
// palette) or 24-bit RGB (§4.3's as_pnm operation).
func (b Bitmap) AsPNM() ([]byte, error) {
	switch b.Type {
	case Pixel1Bit:
		return b.asPBM()
	case Pixel8BitIndexed, Pixel24BitRGB:
		return b.asPPM()
	default:
		return nil, mwawerr.New(mwawerr.Generic, "bitmap.AsPNM", fmt.Errorf("unknown pixel type %d", b.Type))
	}
}

func (b Bitmap) asPBM() ([]byte, error) {
	rowBytes := b.rowBytes1Bit()
	want := rowBytes * b.Height
	if len(b.Data) < want {
		return nil, mwawerr.New(mwawerr.Truncated, "bitmap.asPBM", nil)
	}
	var out bytes.Buffer
	fmt.Fprintf(&out, "P4\n%d %d\n", b.Width, b.Height)
	out.Write(b.Data[:want])
	return out.Bytes(), nil
}

func (b Bitmap) asPPM() ([]byte, error) {
	var out bytes.Buffer
	fmt.Fprintf(&out, "P6\n%d %d\n255\n", b.Width, b.Height)
	switch b.Type {
	case Pixel24BitRGB:
		want := b.Width * b.Height * 3
		if len(b.Data) < want {
			return nil, mwawerr.New(mwawerr.Truncated, "bitmap.asPPM", nil)
		}
		out.Write(b.Data[:want])
	case Pixel8BitIndexed:
		want := b.Width * b.Height
		if len(b.Data) < want {
			return nil, mwawerr.New(mwawerr.Truncated, "bitmap.asPPM", nil)
		}
		if len(b.Palette) == 0 {
			return nil, mwawerr.New(mwawerr.MissingReference, "bitmap.asPPM", fmt.Errorf("indexed bitmap has no palette"))
		}
		rgb := make([]byte, 0, want*3)
		for _, idx := range b.Data[:want] {
			if int(idx) >= len(b.Palette) {
				return nil, mwawerr.New(mwawerr.MissingReference, "bitmap.asPPM", fmt.Errorf("palette index %d out of range", idx))
			}
			c := b.Palette[idx]
			rgb = append(rgb, c.R, c.G, c.B)
		}
		out.Write(rgb)
	}
	return out.Bytes(), nil
}
