package messages

import "fmt"

// DecodeError reports a wire value that does not match any shape known to
// this package. Tag carries an unrecognized "type" discriminator when that
// was the failure; Field names a missing or mistyped field when that was.
type DecodeError struct {
	Tag   string
	Field string
	msg   string
}

func (e *DecodeError) Error() string { return e.msg }

func unknownTagError(tag string) *DecodeError {
	return &DecodeError{Tag: tag, msg: fmt.Sprintf("unknown type %q", tag)}
}

func missingFieldError(field string) *DecodeError {
	return &DecodeError{Field: field, msg: fmt.Sprintf("missing required field '%s'", field)}
}

func invalidFieldError(field, format string, args ...any) *DecodeError {
	return &DecodeError{Field: field, msg: fmt.Sprintf("field '%s' %s", field, fmt.Sprintf(format, args...))}
}

func shapeError(format string, args ...any) *DecodeError {
	return &DecodeError{msg: fmt.Sprintf(format, args...)}
}
