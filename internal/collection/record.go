package collection

import "time"

const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"

	// fieldKinds holds a JSON map of non-string kinds for undeclared fields.
	fieldKinds = "_kinds"
)

// TimeLayout is the ISO-8601 UTC millisecond layout of record timestamps.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Record is a single entity instance with its logical field values.
type Record map[string]any

func (r Record) ID() string {
	return r.String(FieldID)
}

func (r Record) CreatedAt() string {
	return r.String(FieldCreatedAt)
}

func (r Record) UpdatedAt() string {
	return r.String(FieldUpdatedAt)
}

// String returns the field as a string, or "" when absent or not a string.
func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

// Number returns the field as a float64, or 0 when absent or not a number.
func (r Record) Number(name string) float64 {
	f, _ := r[name].(float64)
	return f
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func isSystemField(name string) bool {
	return name == FieldID || name == FieldCreatedAt || name == FieldUpdatedAt || name == fieldKinds
}
