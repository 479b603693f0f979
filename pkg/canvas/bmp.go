package canvas

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// BMP errors.
var (
	ErrBadSignature = errors.New("not a BMP file")
	ErrTruncated    = errors.New("truncated BMP data")
)

// Monochrome bitmap layout constants. Pixel data always starts at byte 130:
// 14 bytes of file header, a 108-byte info header, and the two palette
// entries.
const (
	bmpDataOffset    = 130
	bmpInfoHeaderLen = 108
	bmpPixelsPerM    = 2835
)

// bmpTailBlock is the fixed remainder of the info header (colorspace fields)
// followed by the two-color palette: color 0 is white, color 1 black. Every
// emitted tile carries it byte for byte.
var bmpTailBlock = [76]byte{
	66, 71, 82, 115, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 255, 255, 255, 0,
	0, 0, 0, 0,
}

// ImageSize returns the encoded pixel-array size in bytes: each row padded
// to a 4-byte boundary, all rows counted.
func (c *Canvas) ImageSize() int {
	return (c.width + 31) / 32 * 4 * c.height
}

// EncodeBMP writes the canvas as a self-contained 1-bit monochrome bitmap.
// Rows are stored top-to-bottom in memory but the format wants them
// bottom-to-top, so row order is reversed during emission.
func (c *Canvas) EncodeBMP(w io.Writer) error {
	imageSize := c.ImageSize()

	buf := new(bytes.Buffer)
	buf.Grow(bmpDataOffset + imageSize)
	buf.WriteString("BM")
	le := binary.LittleEndian

	writeU32 := func(v uint32) {
		var b [4]byte
		le.PutUint32(b[:], v)
		buf.Write(b[:])
	}
	writeU16 := func(v uint16) {
		var b [2]byte
		le.PutUint16(b[:], v)
		buf.Write(b[:])
	}

	writeU32(uint32(bmpDataOffset + imageSize)) // file size
	writeU32(0)                                 // reserved
	writeU32(bmpDataOffset)
	writeU32(bmpInfoHeaderLen)
	writeU32(uint32(c.width))
	writeU32(uint32(c.height))
	writeU16(1) // planes
	writeU16(1) // bits per pixel
	writeU32(0) // compression: none
	writeU32(uint32(imageSize))
	writeU32(bmpPixelsPerM) // horizontal resolution
	writeU32(bmpPixelsPerM) // vertical resolution
	writeU32(2)             // colors used
	writeU32(2)             // important colors
	buf.Write(bmpTailBlock[:])

	rowLen := (c.width + 31) / 32 * 4
	pad := make([]byte, rowLen-c.stride)
	for y := c.height - 1; y >= 0; y-- {
		buf.Write(c.bits[y*c.stride : (y+1)*c.stride])
		buf.Write(pad)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Info describes the header of an encoded bitmap.
type Info struct {
	FileSize   uint32
	DataOffset uint32
	Width      int
	Height     int
	BitCount   uint16
	ImageSize  uint32
}

// ReadInfo parses the leading header fields of a bitmap produced by
// EncodeBMP.
func ReadInfo(r io.Reader) (*Info, error) {
	var hdr [38]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if hdr[0] != 'B' || hdr[1] != 'M' {
		return nil, ErrBadSignature
	}

	le := binary.LittleEndian
	return &Info{
		FileSize:   le.Uint32(hdr[2:]),
		DataOffset: le.Uint32(hdr[10:]),
		Width:      int(int32(le.Uint32(hdr[18:]))),
		Height:     int(int32(le.Uint32(hdr[22:]))),
		BitCount:   le.Uint16(hdr[28:]),
		ImageSize:  le.Uint32(hdr[34:]),
	}, nil
}
