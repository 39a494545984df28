package wizard

import "fmt"

// Helpers for reading loosely-typed JSON payload values. Handlers bind the
// step body into a map[string]any; these coerce entries into the shapes
// the field specs expect.

func asString(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

func asTriState(v any) (TriState, error) {
	s, err := asString(v)
	if err != nil {
		return TriStateUnanswered, err
	}
	t := TriState(s)
	if !t.Valid() {
		return TriStateUnanswered, fmt.Errorf("invalid selection %q", s)
	}
	return t, nil
}

func asStringList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list, got %T", v)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string list entry, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}

func asRecordList(v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list, got %T", v)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected record list entry, got %T", item)
		}
		out = append(out, m)
	}
	return out, nil
}

// gateValue reads the tri-state gate of a detail field from the payload.
// A missing or malformed gate reads as unanswered; the gate field's own
// validation reports the problem.
func gateValue(fields map[string]any, gate string) TriState {
	t, err := asTriState(fields[gate])
	if err != nil {
		return TriStateUnanswered
	}
	return t
}
