// internal/domain/homework/record.go
package homework

// Record is a single homework entry as returned by the review API.
// Only "status" and "homework_name" are read; everything else is kept as-is.
type Record map[string]any

// Status represents the review state reported for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

const (
	FieldStatus    = "status"
	FieldName      = "homework_name"
	FieldHomeworks = "homeworks"
)
