package parse

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrIO marks a source file that could not be opened. LoadRaw recovers
	// from it by returning no rows.
	ErrIO = errors.New("io error")
	// ErrDecode marks input whose structure does not match the results layout.
	ErrDecode = errors.New("decode error")
)

// DecodeError reports which reshaping step rejected the input.
type DecodeError struct {
	Step   string
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Step, e.Detail)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func decodeErrorf(step, format string, args ...interface{}) error {
	return &DecodeError{Step: step, Detail: fmt.Sprintf(format, args...)}
}

// Classify maps an error onto a short code for log fields.
func Classify(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrIO):
		return "io"
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		return "io"
	}
	return "unknown"
}
