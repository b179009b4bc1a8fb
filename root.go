// Package derez extracts binary resources from textual DeRez dumps.
//
// DeRez is the textual disassembly format produced by the classic
// Macintosh resource decompiler: every resource in a file's resource
// fork is rendered as a typed, numbered block whose payload is listed
// as lines of hex bytes, e.g.
//
//	data 'PICT' (128, "MyImage", purgeable) {
//		$"0011 02FF 0C00 FFFE"
//		$"0000 0048 0000 0048"
//	};
//
// This package scans such dumps and writes every PICT resource back
// out as a standalone picture file, complete with the 512-byte zeroed
// header that PICT readers expect. Resources of any other type are
// parsed and discarded.
package derez

import (
	"golang.org/x/text/encoding/charmap"
	"io"
	"os"
)

// Root describes one extraction run: where output files land and how
// dump text and unnamed resources are interpreted.
type Root struct {
	// Dir is the directory extracted files are written into. It must
	// already exist; files are written by name and silently overwrite
	// anything already there.
	Dir string

	// BareNumbers names resources that carry no quoted display name
	// after their bare id ("128.PICT"). The default is the prefixed
	// form ("R128.PICT"). Both conventions exist in the wild.
	BareNumbers bool

	// Charmap is the single-byte character set dump files are decoded
	// with by ExtractFile. DeRez wrote its output in the classic Mac
	// encoding, so a nil Charmap means Mac OS Roman.
	Charmap *charmap.Charmap
}

// NewRoot returns a Root that extracts into dir with default settings.
func NewRoot(dir string) *Root {
	return &Root{Dir: dir}
}

func (root *Root) charset() *charmap.Charmap {
	if root.Charmap != nil {
		return root.Charmap
	}
	return charmap.Macintosh
}

// ExtractFile opens the named dump file, decodes it with the
// configured legacy character set, and extracts every PICT resource
// in it into root.Dir.
func (root *Root) ExtractFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return root.Extract(root.charset().NewDecoder().Reader(f))
}

// Extract scans an already-decoded text stream and extracts every
// PICT resource in it into root.Dir. See the package comment for the
// recognized block shape.
func (root *Root) Extract(r io.Reader) error {
	return root.extract(r)
}
