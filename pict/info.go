package pict

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/32bitkid/bitreader"
)

// Rect is a QuickDraw rectangle, stored top, left, bottom, right.
type Rect struct {
	Top, Left, Bottom, Right int16
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Info is the picture header at the start of the picture data, after
// the 512-byte file header.
type Info struct {
	// Size is the picture's size word. Only the low 16 bits of the
	// real size were stored, so it wraps for pictures over 64k and is
	// informational at best.
	Size uint16

	// Frame is the picture's bounding rectangle.
	Frame Rect

	// Version is 1 or 2, from the version opcode that follows the
	// frame.
	Version int
}

type infoReader struct {
	bits bitreader.BitReader
}

func (p infoReader) rect() (Rect, error) {
	var r Rect
	for _, edge := range []*int16{&r.Top, &r.Left, &r.Bottom, &r.Right} {
		v, err := p.bits.Read16(16)
		if err != nil {
			return Rect{}, err
		}
		*edge = int16(v)
	}
	return r, nil
}

// version reads the version opcode. Two encodings exist:
//
//	bytes |
//	11 01 | version 1
//	00 11 | two-byte version-2 opcode, followed by
//	02 FF | the version-2 marker
//
// Version-2 pictures pad the opcode stream to even offsets, which is
// where the leading 00 comes from.
func (p infoReader) version() (int, error) {
	b, err := p.bits.Read8(8)
	if err != nil {
		return 0, err
	}
	if b == 0x00 {
		if b, err = p.bits.Read8(8); err != nil {
			return 0, err
		}
	}
	if b != 0x11 {
		return 0, fmt.Errorf("pict: unexpected opcode %#02x, wanted version", b)
	}

	v, err := p.bits.Read8(8)
	if err != nil {
		return 0, err
	}
	switch v {
	case 0x01:
		return 1, nil
	case 0x02:
		marker, err := p.bits.Read8(8)
		if err != nil {
			return 0, err
		}
		if marker != 0xFF {
			return 0, fmt.Errorf("pict: bad version-2 marker %#02x", marker)
		}
		return 2, nil
	}
	return 0, fmt.Errorf("pict: unknown picture version %#02x", v)
}

// ReadInfo parses the picture header out of data. Pass the picture
// data itself, i.e. the file content with the leading 512-byte header
// already skipped.
func ReadInfo(data []byte) (Info, error) {
	p := infoReader{bitreader.NewReader(bufio.NewReader(bytes.NewReader(data)))}

	var info Info
	size, err := p.bits.Read16(16)
	if err != nil {
		return Info{}, err
	}
	info.Size = size

	if info.Frame, err = p.rect(); err != nil {
		return Info{}, err
	}
	if info.Version, err = p.version(); err != nil {
		return Info{}, err
	}
	return info, nil
}

// ReadFileInfo parses the picture header of a complete PICT file,
// skipping the 512-byte file header first.
func ReadFileInfo(content []byte) (Info, error) {
	if len(content) < HeaderSize {
		return Info{}, fmt.Errorf("pict: %d bytes is too short for a picture file", len(content))
	}
	return ReadInfo(content[HeaderSize:])
}
