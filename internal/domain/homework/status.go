package homework

import "fmt"

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable sentence for a known status.
func Verdict(status Status) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// ParseStatus builds the chat message describing the record's current review state.
func ParseStatus(r Record) (string, error) {
	status, err := stringField(r, FieldStatus)
	if err != nil {
		return "", err
	}
	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrMissingData, status)
	}
	name, err := stringField(r, FieldName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

func stringField(r Record, key string) (string, error) {
	raw, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: field %q not found", ErrMissingData, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %T, not a string", ErrMissingData, key, raw)
	}
	return s, nil
}
