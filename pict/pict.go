// Package pict deals with the on-disk shape of QuickDraw picture
// files: the 512-byte application header that prefixes the picture
// data, and the picture header that follows it.
package pict

import (
	"os"
)

// HeaderSize is the length of the application-reserved header at the
// start of every PICT file. It was historically used for print-record
// data; readers require it to be present but accept it zero-filled.
const HeaderSize = 512

// Wrap returns payload as the content of a complete PICT file: 512
// zero bytes followed by the picture data.
func Wrap(payload []byte) []byte {
	buf := make([]byte, HeaderSize+len(payload))
	copy(buf[HeaderSize:], payload)
	return buf
}

// WriteFile writes payload as a PICT file at name, replacing any
// existing file.
func WriteFile(name string, payload []byte) error {
	return os.WriteFile(name, Wrap(payload), 0666)
}
