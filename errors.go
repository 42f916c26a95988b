package slug

import (
	"errors"
	"fmt"
)

// EncodingError is the unified failure surface of the Dispatcher.
// Values are comparable with == and match with errors.Is.
type EncodingError uint8

const (
	// ErrFailed indicates an underlying transform faulted while encoding.
	// A fixed EncodingKind never fails on well-formed bytes, so this signals
	// a programming or environment fault rather than bad data.
	// The zero EncodingError is not a valid error kind.
	ErrFailed EncodingError = iota + 1

	// ErrEncoding indicates an encode-path fault that is not a transform
	// failure, such as an out-of-range EncodingKind.
	ErrEncoding

	// ErrDecoding indicates the input text is not valid for the selected encoding.
	ErrDecoding
)

func (e EncodingError) Error() string {
	switch e {
	case ErrFailed:
		return "encoding failed"
	case ErrEncoding:
		return "encoding error"
	case ErrDecoding:
		return "decoding error"
	default:
		return fmt.Sprintf("encoding error %d", uint8(e))
	}
}

// Sentinel errors for shape and tag handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidLength indicates decoded bytes do not fit a fixed-size shape.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnknownKind indicates an encoding name that maps to no EncodingKind.
	ErrUnknownKind = errors.New("unknown encoding")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnsupportedField indicates a tagged field is not a byte slice or byte array.
	ErrUnsupportedField = errors.New("unsupported field type")

	// ErrMissingField indicates a record lacks a value for a tagged field.
	ErrMissingField = errors.New("missing field")

	// ErrNilTarget indicates a nil pointer was passed to a FieldCodec.
	ErrNilTarget = errors.New("nil target")
)

// FieldError represents a failure to encode or decode a tagged struct field.
// It wraps a sentinel error with context about the field and encoding.
type FieldError struct {
	Err      error        // Underlying sentinel error (ErrDecoding, ErrMissingField, etc.)
	Field    string       // Field name that failed
	Encoding EncodingKind // Encoding declared by the field's tag
	Cause    error        // Original error from the transform, if any
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s (%s): %v", e.Err.Error(), e.Field, e.Encoding, e.Cause)
	}
	return fmt.Sprintf("%s field %s (%s)", e.Err.Error(), e.Field, e.Encoding)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// newFieldError creates a FieldError for field transformation failures.
func newFieldError(sentinel error, field string, kind EncodingKind, cause error) error {
	return &FieldError{
		Err:      sentinel,
		Field:    field,
		Encoding: kind,
		Cause:    cause,
	}
}

// lengthError wraps ErrInvalidLength with the expected and actual sizes.
func lengthError(want, got int) error {
	return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, want, got)
}
