package derez

import (
	"bufio"
	"fmt"
	"github.com/macfork/derez/pict"
	"github.com/macfork/derez/resource"
	"io"
	"path/filepath"
	"strconv"
)

// block accumulates one in-progress resource. At most one block is
// live at a time; a header line replaces it wholesale, so an unfinished
// block is discarded when a new header arrives before its end line.
type block struct {
	open    bool
	header  resource.Header
	payload []byte
}

func (root *Root) extract(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	var cur block
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if h, ok := resource.ParseHeader(line); ok {
			cur = block{open: true, header: h}
			continue
		}

		if body, ok := resource.ParseData(line); ok {
			if !cur.open {
				continue
			}
			data, err := resource.DecodeHex(body)
			if err != nil {
				return fmt.Errorf("derez: line %d: %w", lineNo, err)
			}
			cur.payload = append(cur.payload, data...)
			continue
		}

		if resource.IsEnd(line) {
			if !cur.open {
				continue
			}
			if err := root.emit(cur); err != nil {
				return err
			}
			cur = block{}
		}

		// Anything else is commentary or syntax we don't care about.
	}
	return scanner.Err()
}

// emit materializes a finished block. Only PICT resources produce a
// file; every other type is dropped after parsing.
func (root *Root) emit(cur block) error {
	if cur.header.Type != resource.TypePICT {
		return nil
	}
	name := filepath.Join(root.Dir, root.fileName(cur.header))
	return pict.WriteFile(name, cur.payload)
}

func (root *Root) fileName(h resource.Header) string {
	base := h.Name
	if !h.Named {
		base = strconv.Itoa(int(h.Number))
		if !root.BareNumbers {
			base = "R" + base
		}
	}
	return base + "." + string(h.Type)
}
