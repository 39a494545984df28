package wizard

import "time"

// Kind classifies the shape of a wizard field. Validation and persistence
// are both driven from these specs; there is no per-field code anywhere.
type Kind int

const (
	// KindText is a free-text value.
	KindText Kind = iota
	// KindDate is a calendar date serialized as "2006-01-02".
	KindDate
	// KindTristate is a yes/no question carried as "", "Sim" or "Não".
	KindTristate
	// KindStringList is an ordered list of strings, replaced wholesale.
	KindStringList
	// KindRecordList is an ordered list of sub-records, replaced wholesale.
	KindRecordList
)

// Field declares one wizard field inside a step section.
type Field struct {
	// Name is the JSON/BSON key of the field within its section.
	Name string
	Kind Kind

	// DetailOf names the tri-state field gating this one: the field is
	// required exactly when that confirmation is "Sim" and never checked
	// when it is "Não".
	DetailOf string

	// Required marks a field of a sub-record element as mandatory when the
	// entry is added or submitted. Only meaningful inside Element specs.
	Required bool

	// Element is the sub-record shape for KindRecordList fields.
	Element []Field
}

// DateLayout is the wire format of KindDate values.
const DateLayout = "2006-01-02"

// ParseDate parses a wire date value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
