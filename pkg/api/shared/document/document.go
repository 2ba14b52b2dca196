// Package document reads typed fields out of the untyped specification
// documents the operator receives from the cluster. All extractors report a
// *SpecError carrying the dotted path of the offending field, so validation
// failures can be surfaced to the user verbatim.
package document

import (
	"errors"
	"fmt"
)

// SpecError marks a user-correctable problem in a specification document, as
// opposed to an integration fault, which is propagated as a plain error.
type SpecError struct {
	message string
}

func NewSpecError(format string, args ...any) *SpecError {
	return &SpecError{message: fmt.Sprintf(format, args...)}
}

func (e *SpecError) Error() string {
	return e.message
}

func IsSpecError(err error) bool {
	specErr := &SpecError{}

	return errors.As(err, &specErr)
}

// Bool extracts a boolean field. The prefix names the document subtree for the
// error message, the field is appended to it.
func Bool(doc map[string]interface{}, field string, prefix string) (bool, error) {
	value, ok := doc[field].(bool)
	if !ok {
		return false, NewSpecError("%s.%s expected to be a boolean", prefix, field)
	}

	return value, nil
}

// Int extracts an integer field. JSON and YAML decoders hand integers over as
// int, int64 or a whole float64 depending on the source, all three are accepted.
func Int(doc map[string]interface{}, field string, prefix string) (int, error) {
	switch value := doc[field].(type) {
	case int:
		return value, nil
	case int32:
		return int(value), nil
	case int64:
		return int(value), nil
	case float64:
		if value == float64(int(value)) {
			return int(value), nil
		}
	}

	return 0, NewSpecError("%s.%s expected to be an integer", prefix, field)
}

// Float extracts a numeric field that may be written as either an integer or a
// fractional number in the document.
func Float(doc map[string]interface{}, field string, prefix string) (float64, error) {
	switch value := doc[field].(type) {
	case int:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case float32:
		return float64(value), nil
	case float64:
		return value, nil
	}

	return 0, NewSpecError("%s.%s expected to be a number", prefix, field)
}
