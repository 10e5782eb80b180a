package homework

import "errors"

var (
	// ErrUnexpectedShape is returned when the API payload is not a JSON object.
	ErrUnexpectedShape = errors.New("unexpected API response shape")
	// ErrMissingKey is returned when the payload has no "homeworks" key.
	ErrMissingKey = errors.New("expected key is missing in API response")
	// ErrWrongFieldType is returned when "homeworks" is not a list.
	ErrWrongFieldType = errors.New("API response field has wrong type")
	// ErrMissingData is returned when a record lacks required fields or has an unknown status.
	ErrMissingData = errors.New("required homework data is missing or unknown")
)
