package wizard

import "fmt"

// FieldErrors maps field paths to user-facing messages.
type FieldErrors map[string]string

func (fe FieldErrors) add(path, msg string) {
	if _, taken := fe[path]; !taken {
		fe[path] = msg
	}
}

// Validation messages.
const (
	msgSelectionRequired = "selection required"
	msgRequired          = "required"
	msgInvalidDate       = "invalid date"
)

// ValidateStep runs the whole-step refinement pass used by Submit: every
// tri-state must be answered, every detail field is required exactly when
// its gate is "Sim", and sub-record lists are validated as a whole
// collection, entry by entry.
func ValidateStep(step Step, fields map[string]any) FieldErrors {
	errs := FieldErrors{}
	for _, f := range step.Fields {
		validateField(f, f.Name, fields, errs)
	}
	return errs
}

func validateField(f Field, path string, fields map[string]any, errs FieldErrors) {
	v := fields[f.Name]

	switch f.Kind {
	case KindTristate:
		t, err := asTriState(v)
		if err != nil || !t.Answered() {
			errs.add(path, msgSelectionRequired)
		}

	case KindText:
		s, err := asString(v)
		if err != nil {
			errs.add(path, msgRequired)
			return
		}
		if f.requiredNow(fields) && s == "" {
			errs.add(path, msgRequired)
		}

	case KindDate:
		s, err := asString(v)
		if err != nil {
			errs.add(path, msgInvalidDate)
			return
		}
		if s == "" {
			if f.requiredNow(fields) {
				errs.add(path, msgRequired)
			}
			return
		}
		if _, err := ParseDate(s); err != nil {
			errs.add(path, msgInvalidDate)
		}

	case KindStringList:
		list, err := asStringList(v)
		if err != nil {
			errs.add(path, msgRequired)
			return
		}
		if f.requiredNow(fields) && len(list) == 0 {
			errs.add(path, msgRequired)
		}

	case KindRecordList:
		list, err := asRecordList(v)
		if err != nil {
			errs.add(path, msgRequired)
			return
		}
		if f.requiredNow(fields) && len(list) == 0 {
			errs.add(path, msgRequired)
			return
		}
		// When the gate is "Não" the list content is never checked.
		if f.DetailOf != "" && gateValue(fields, f.DetailOf) != TriStateYes {
			return
		}
		for i, entry := range list {
			validateRecord(f.Element, fmt.Sprintf("%s[%d]", path, i), entry, errs)
		}
	}
}

// requiredNow reports whether a detail field is required for the current
// payload: only when it is gated and the gate answer is "Sim".
func (f Field) requiredNow(fields map[string]any) bool {
	return f.DetailOf != "" && gateValue(fields, f.DetailOf) == TriStateYes
}

// validateRecord checks one sub-record entry against its element spec.
// The same rules run on add (ListEditor) and on submit, so the two paths
// cannot diverge.
func validateRecord(spec []Field, path string, entry map[string]any, errs FieldErrors) {
	for _, ef := range spec {
		fieldPath := path + "." + ef.Name
		v := entry[ef.Name]
		switch ef.Kind {
		case KindDate:
			s, err := asString(v)
			if err != nil {
				errs.add(fieldPath, msgInvalidDate)
				continue
			}
			if s == "" {
				if ef.Required {
					errs.add(fieldPath, msgRequired)
				}
				continue
			}
			if _, err := ParseDate(s); err != nil {
				errs.add(fieldPath, msgInvalidDate)
			}
		default:
			s, err := asString(v)
			if err != nil {
				errs.add(fieldPath, msgRequired)
				continue
			}
			if ef.Required && s == "" {
				errs.add(fieldPath, msgRequired)
			}
		}
	}
}
