package encodeservice

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvableEncoding is returned when a name is not known to the registry.
	ErrUnresolvableEncoding = errors.New("unresolvable encoding")
	// ErrBytesExpected is returned by codecs that only transform raw bytes.
	ErrBytesExpected = errors.New("codec expects byte input, not text")
	// ErrTextOutput is returned by codecs that turn text into text instead of bytes.
	ErrTextOutput = errors.New("codec produces text, not bytes")
	// ErrNoMatch is returned by Classify when no encoding reproduced the lookup target.
	ErrNoMatch = errors.New("no match identified")
)

// ConstraintError reports input that cannot be represented under an encoding.
type ConstraintError struct {
	Encoding string
	Err      error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("failed encoding for %s: %v", e.Encoding, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// InputSourceError reports an input file that does not exist or is not a regular file.
type InputSourceError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InputSourceError) Error() string {
	return fmt.Sprintf("input file does not exist or is not a file: %s (%s)", e.Path, e.Reason)
}

func (e *InputSourceError) Unwrap() error {
	return e.Err
}
