package wizard

import (
	"fmt"

	"visaflow/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildSubmitUpdate converts a validated step payload into a $set document
// keyed by dotted section paths. Tri-states are encoded onto booleans,
// dates are parsed, and list fields replace the stored list wholesale.
// Call only after ValidateStep returned no errors.
func BuildSubmitUpdate(step Step, fields map[string]any) (bson.M, error) {
	return buildUpdate(step, fields, false)
}

// BuildSaveUpdate converts a draft step payload into a partial $set
// document. No full validation runs: an empty string, empty list or absent
// key means "no change", so a previously saved answer is never overwritten
// with a blank one. The flip side is that a field can never be cleared
// back to blank via Save; only Submit overwrites with validated values.
func BuildSaveUpdate(step Step, fields map[string]any) (bson.M, error) {
	return buildUpdate(step, fields, true)
}

func buildUpdate(step Step, fields map[string]any, partial bool) (bson.M, error) {
	update := bson.M{}
	for _, f := range step.Fields {
		v, present := fields[f.Name]
		if !present {
			continue
		}
		key := step.Section + "." + f.Name

		switch f.Kind {
		case KindTristate:
			t, err := asTriState(v)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: %v", f.Name, err)}
			}
			if !t.Answered() {
				// Unanswered stays null; Submit validation already rejected it.
				continue
			}
			b, err := t.Encode()
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: %v", f.Name, err)}
			}
			update[key] = b

		case KindText:
			s, err := asString(v)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: %v", f.Name, err)}
			}
			if partial && s == "" {
				continue
			}
			update[key] = s

		case KindDate:
			s, err := asString(v)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: %v", f.Name, err)}
			}
			if s == "" {
				continue
			}
			d, err := ParseDate(s)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: invalid date %q", f.Name, s)}
			}
			update[key] = d

		case KindStringList:
			list, err := asStringList(v)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: %v", f.Name, err)}
			}
			if partial && len(list) == 0 {
				continue
			}
			update[key] = list

		case KindRecordList:
			list, err := asRecordList(v)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s: %v", f.Name, err)}
			}
			if partial && len(list) == 0 {
				continue
			}
			converted, err := convertRecords(f, list)
			if err != nil {
				return nil, err
			}
			update[key] = converted
		}
	}
	return update, nil
}

// convertRecords projects each sub-record entry onto its element spec,
// dropping unknown keys and parsing dates. Order is preserved.
func convertRecords(f Field, list []map[string]any) ([]bson.M, error) {
	out := make([]bson.M, 0, len(list))
	for i, entry := range list {
		doc := bson.M{}
		for _, ef := range f.Element {
			v, present := entry[ef.Name]
			if !present {
				continue
			}
			s, err := asString(v)
			if err != nil {
				return nil, utils.BadRequestError{Message: fmt.Sprintf("%s[%d].%s: %v", f.Name, i, ef.Name, err)}
			}
			if ef.Kind == KindDate {
				if s == "" {
					continue
				}
				d, err := ParseDate(s)
				if err != nil {
					return nil, utils.BadRequestError{Message: fmt.Sprintf("%s[%d].%s: invalid date %q", f.Name, i, ef.Name, s)}
				}
				doc[ef.Name] = d
				continue
			}
			doc[ef.Name] = s
		}
		out = append(out, doc)
	}
	return out, nil
}
