package homework

import "fmt"

// CheckResponse validates a decoded API payload and returns its homework records.
// The payload is expected to look like {"homeworks": [{...}, ...]}.
func CheckResponse(payload any) ([]Record, error) {
	response, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T instead of an object", ErrUnexpectedShape, payload)
	}

	raw, ok := response[FieldHomeworks]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, FieldHomeworks)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, not a list", ErrWrongFieldType, FieldHomeworks, raw)
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T", ErrUnexpectedShape, FieldHomeworks, i, item)
		}
		records = append(records, Record(obj))
	}
	return records, nil
}
