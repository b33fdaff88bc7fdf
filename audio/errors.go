// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindIO means a file or stream could not be opened, read, created or written.
	KindIO
	// KindFormat means the bytes are not a supported PCM WAV layout.
	KindFormat
	// KindValidation means a caller supplied parameter is out of range.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindFormat:
		return "format"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the codec and the filters.
type Error struct {
	Kind Kind
	// Op names the failing operation, e.g. "decode" or "resample".
	Op  string
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match against another *Error of the same kind. A target
// without a message (ErrIO, ErrFormat, ErrValidation) matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}

	return t.Msg == "" || (t.Msg == e.Msg && t.Op == e.Op)
}

var (
	ErrIO         = &Error{Kind: KindIO}
	ErrFormat     = &Error{Kind: KindFormat}
	ErrValidation = &Error{Kind: KindValidation}
)

// IOError wraps err as a KindIO error.
func IOError(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Msg: "i/o failure", Err: err}
}

// FormatError builds a KindFormat error.
func FormatError(op, format string, args ...any) error {
	return &Error{Kind: KindFormat, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError builds a KindValidation error.
func ValidationError(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}
