package resource

// Type is the four-character tag identifying a resource's kind, as it
// appears between single quotes in a dump ('PICT', 'ICN#', ...). Tags
// are case-sensitive and exactly four characters long.
type Type string

// Number identifies a resource within one dump. Numbers are only
// unique per type per dump, not globally.
type Number int

// Tags this package is likely to encounter. Only TypePICT is ever
// materialized; the rest are recognized and discarded.
const (
	TypePICT Type = "PICT"
	TypeTEXT Type = "TEXT"
	TypeICON Type = "ICON"
	TypeSND  Type = "snd "
	TypeSTR  Type = "STR#"
)

// Header describes the opening line of a resource block: its type tag,
// its numeric id, and the display name if the descriptor carried one.
type Header struct {
	Type   Type
	Number Number
	Name   string
	Named  bool
}
