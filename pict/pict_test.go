package pict

import (
	"bytes"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap([]byte{0x01, 0x02})
	if len(got) != HeaderSize+2 {
		t.Fatalf("expected %d bytes, got %d", HeaderSize+2, len(got))
	}
	if !bytes.Equal(got[:HeaderSize], make([]byte, HeaderSize)) {
		t.Fatal("header is not zero-filled")
	}
	if !bytes.Equal(got[HeaderSize:], []byte{0x01, 0x02}) {
		t.Fatalf("payload mangled: % x", got[HeaderSize:])
	}
}

func TestWrapEmpty(t *testing.T) {
	if got := Wrap(nil); len(got) != HeaderSize {
		t.Fatalf("expected bare header, got %d bytes", len(got))
	}
}

// header builds picture data with the given size word, frame and
// version opcode bytes.
func header(size uint16, frame Rect, version ...byte) []byte {
	words := []int16{int16(size), frame.Top, frame.Left, frame.Bottom, frame.Right}
	var b []byte
	for _, w := range words {
		b = append(b, byte(uint16(w)>>8), byte(w))
	}
	return append(b, version...)
}

type infoTestCase struct {
	data []byte
	want Info
}

func runInfoTest(t *testing.T, cases []infoTestCase) {
	for i, tCase := range cases {
		got, err := ReadInfo(tCase.data)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if got != tCase.want {
			t.Fatalf("%d: expected(%+v) != actual(%+v)", i, tCase.want, got)
		}
	}
}

func TestReadInfo(t *testing.T) {
	frame := Rect{Top: 0, Left: 0, Bottom: 64, Right: 96}
	runInfoTest(t, []infoTestCase{
		{
			data: header(18, frame, 0x11, 0x01),
			want: Info{Size: 18, Frame: frame, Version: 1},
		},
		{
			data: header(0xFFFE, frame, 0x00, 0x11, 0x02, 0xFF),
			want: Info{Size: 0xFFFE, Frame: frame, Version: 2},
		},
		{
			// Version 2 without the even-alignment pad byte.
			data: header(10, Rect{Top: -8, Left: -8, Bottom: 8, Right: 8}, 0x11, 0x02, 0xFF),
			want: Info{Size: 10, Frame: Rect{Top: -8, Left: -8, Bottom: 8, Right: 8}, Version: 2},
		},
	})
}

func TestReadInfoErrors(t *testing.T) {
	frame := Rect{Bottom: 1, Right: 1}
	for i, data := range [][]byte{
		header(4, frame, 0x20, 0x01),       // not a version opcode
		header(4, frame, 0x11, 0x07),       // unknown version
		header(4, frame, 0x11, 0x02, 0x00), // bad version-2 marker
		header(4, frame),                   // truncated before the opcode
		{0x00, 0x04},                       // truncated mid-frame
	} {
		if _, err := ReadInfo(data); err == nil {
			t.Fatalf("%d: expected an error", i)
		}
	}
}

func TestReadFileInfo(t *testing.T) {
	frame := Rect{Bottom: 2, Right: 2}
	content := Wrap(header(12, frame, 0x11, 0x01))
	info, err := ReadFileInfo(content)
	if err != nil {
		t.Fatal(err)
	}
	if info.Version != 1 || info.Frame != frame {
		t.Fatalf("unexpected info %+v", info)
	}

	if _, err := ReadFileInfo([]byte{0x00}); err == nil {
		t.Fatal("expected an error for a short file")
	}
}

func TestRectString(t *testing.T) {
	r := Rect{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if got := r.String(); got != "(2,1)-(4,3)" {
		t.Fatalf("unexpected %q", got)
	}
}
