package app

import (
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"
)

// errorKinds labels recoverable poll failures for logging.
var errorKinds = []struct {
	target error
	name   string
}{
	{practicum.ErrRequestFailed, "transport"},
	{practicum.ErrBadStatus, "bad_status"},
	{practicum.ErrDecodeFailed, "decode"},
	{homework.ErrUnexpectedShape, "unexpected_shape"},
	{homework.ErrMissingKey, "missing_key"},
	{homework.ErrWrongFieldType, "wrong_field_type"},
	{homework.ErrMissingData, "missing_data"},
}
