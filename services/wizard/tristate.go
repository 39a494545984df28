package wizard

import "fmt"

// TriState is the wire value of a yes/no question. The UI only ever
// produces "", "Sim" or "Não"; "" means unanswered.
type TriState string

const (
	TriStateUnanswered TriState = ""
	TriStateYes        TriState = "Sim"
	TriStateNo         TriState = "Não"
)

// Valid reports whether t is one of the three allowed values.
func (t TriState) Valid() bool {
	return t == TriStateUnanswered || t == TriStateYes || t == TriStateNo
}

// Answered reports whether t carries an actual answer.
func (t TriState) Answered() bool {
	return t == TriStateYes || t == TriStateNo
}

// Encode maps an answered tri-state onto its persisted boolean.
// Unanswered or unknown values are an error; callers must validate first
// at submit time and skip unanswered values at save time.
func (t TriState) Encode() (bool, error) {
	switch t {
	case TriStateYes:
		return true, nil
	case TriStateNo:
		return false, nil
	default:
		return false, fmt.Errorf("tri-state %q has no boolean encoding", string(t))
	}
}

// DecodeTriState maps a persisted nullable boolean back onto its wire value.
func DecodeTriState(v *bool) TriState {
	if v == nil {
		return TriStateUnanswered
	}
	if *v {
		return TriStateYes
	}
	return TriStateNo
}
