package resource

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
)

// The three line shapes of a dump, anchored at the start of the line.
//
//	data 'PICT' (128, "MyImage", purgeable) {
//		$"0102 0304"
//	};
//
// The leading token on a header line ("data", "resource", nothing) is
// not significant. The data-line body deliberately admits every letter,
// not just hex digits, so that bad hex reaches DecodeHex and fails
// loudly instead of the line being skipped as unrecognized.
var (
	headerRE = regexp.MustCompile(`^\s*[A-Za-z]*\s*'(....)'\s*\(([^)]+)\)\s*\{`)
	dataRE   = regexp.MustCompile(`^\s*\$"([0-9A-Za-z \t]+)"`)
	endRE    = regexp.MustCompile(`^\s*\};`)
)

// ParseHeader matches a resource-header line. The descriptor between
// the parentheses is a comma-separated tag list: the first tag is the
// decimal id, and any later double-quoted tag is the display name (the
// last one wins). A header-shaped line whose id doesn't parse as a
// decimal number is reported as no match.
func ParseHeader(line string) (Header, bool) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil {
		return Header{}, false
	}

	h := Header{Type: Type(m[1])}
	tags := strings.Split(m[2], ",")
	n, err := strconv.Atoi(strings.TrimSpace(tags[0]))
	if err != nil {
		return Header{}, false
	}
	h.Number = Number(n)

	for _, tag := range tags[1:] {
		tag = strings.TrimSpace(tag)
		if len(tag) >= 2 && tag[0] == '"' && tag[len(tag)-1] == '"' {
			h.Name = tag[1 : len(tag)-1]
			h.Named = true
		}
	}
	return h, true
}

// ParseData matches a hex-data line and returns the raw text between
// the quotes, whitespace and all.
func ParseData(line string) (string, bool) {
	m := dataRE.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsEnd matches the closing "};" of a resource block.
func IsEnd(line string) bool {
	return endRE.MatchString(line)
}

// DecodeHex decodes the body of a data line into bytes. Whitespace is
// insignificant; after stripping it the text must be an even number of
// hex digits.
func DecodeHex(body string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, body)
	return hex.DecodeString(clean)
}
