package wizard

import (
	"fmt"

	"visaflow/utils"
)

// ListEditor models the two-part state of a repeatable sub-record list: an
// ordered committed list plus one trailing draft slot being edited. The
// editor is client-local state; the server rebuilds it per request from
// the payload, so no session state is held between calls.
type ListEditor struct {
	Field     Field
	Committed []map[string]any
	Draft     map[string]any
}

// NewListEditor resolves the named repeatable-list field of a step.
func NewListEditor(step Step, fieldName string) (*ListEditor, error) {
	for _, f := range step.Fields {
		if f.Name == fieldName {
			if f.Kind != KindRecordList {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("field %s of step %s is not a repeatable list", fieldName, step.Name)}
			}
			return &ListEditor{Field: f}, nil
		}
	}
	return nil, utils.BadRequestError{Message: fmt.Sprintf("step %s has no field %s", step.Name, fieldName)}
}

// Add validates the draft slot against the element spec. On success it
// appends a snapshot copy to the committed list and resets the draft,
// leaving a new empty slot open. On failure the committed list is left
// untouched and the field errors are returned; no partial append occurs.
func (e *ListEditor) Add() FieldErrors {
	errs := FieldErrors{}
	validateRecord(e.Field.Element, "", e.Draft, errs)
	if len(errs) > 0 {
		// validateRecord prefixes paths with "."; strip for draft-slot errors.
		stripped := FieldErrors{}
		for path, msg := range errs {
			stripped[path[1:]] = msg
		}
		return stripped
	}

	snapshot := make(map[string]any, len(e.Draft))
	for k, v := range e.Draft {
		snapshot[k] = v
	}
	e.Committed = append(e.Committed, snapshot)
	e.Draft = map[string]any{}
	return nil
}

// Remove deletes a committed entry by position, shifting later entries
// down by one. Remaining entries are not re-validated.
func (e *ListEditor) Remove(index int) error {
	if index < 0 || index >= len(e.Committed) {
		return utils.BadRequestError{Message: fmt.Sprintf("index %d out of range", index)}
	}
	e.Committed = append(e.Committed[:index], e.Committed[index+1:]...)
	return nil
}
