// Package field provides an optional string for upstream data where
// "no usable value" is a first-class state. Both upstream directories
// report missing data inconsistently (null, absent key, empty string),
// and the historical JSON contract renders all of them as the literal
// string "unknown".
package field

import (
	"encoding/json"
)

// UnknownLiteral is the string emitted on the wire for a field no source
// had a usable value for. It exists for contract compatibility with the
// previous API and must not change.
const UnknownLiteral = "unknown"

// Field is a string that is either Known or Unknown. The zero value is
// Unknown.
type Field struct {
	value string
	known bool
}

// Unknown is the sentinel for a field with no usable value.
var Unknown = Field{}

// Known returns a known field holding s.
func Known(s string) Field {
	return Field{value: s, known: true}
}

// Of returns Unknown for the empty string, Known(s) otherwise.
func Of(s string) Field {
	if s == "" {
		return Unknown
	}
	return Known(s)
}

// OfPtr returns Unknown for nil or a pointer to the empty string.
func OfPtr(p *string) Field {
	if p == nil {
		return Unknown
	}
	return Of(*p)
}

// IsKnown reports whether the field holds a usable value.
func (f Field) IsKnown() bool {
	return f.known
}

// Value returns the held value, or the empty string when Unknown.
func (f Field) Value() string {
	return f.value
}

// Or returns f when known, fallback otherwise.
func (f Field) Or(fallback Field) Field {
	if f.known {
		return f
	}
	return fallback
}

// OrUnknown renders the field for the wire: its value, or the literal
// "unknown".
func (f Field) OrUnknown() string {
	if f.known {
		return f.value
	}
	return UnknownLiteral
}

// MarshalJSON emits the value as a JSON string, or "unknown" when the
// field is Unknown.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.OrUnknown())
}

// UnmarshalJSON accepts a string, null, or a number (the directory
// upstream is known to return numeric ids where strings are expected).
// null and "" both decode to Unknown; anything else the field cannot
// represent decodes to Unknown rather than failing.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Of(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Of(n.String())
		return nil
	}

	*f = Unknown
	return nil
}

// String implements fmt.Stringer for logging.
func (f Field) String() string {
	return f.OrUnknown()
}
