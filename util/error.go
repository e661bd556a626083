package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// NError is a sentinel error. The errors derived from it by Wrap, Errorf and
// Call share its identity, so errors.Is matches them whatever the message is.
// The identity is the source position where NewError was called.
type NError struct {
	id      string
	msg     string
	wrapped error
	frames  []uintptr
}

func NewError(s string, a ...interface{}) *NError {
	var pcs [1]uintptr
	_ = runtime.Callers(2, pcs[:])
	f := errors.Frame(pcs[0])

	return &NError{
		id:  fmt.Sprintf("%+s:%d", f, f),
		msg: strings.TrimSpace(fmt.Sprintf(s, a...)),
	}
}

func (er *NError) Error() string {
	if er.wrapped == nil {
		return er.msg
	}

	w := er.wrapped.Error()
	if len(w) < 1 {
		return er.msg
	}

	return er.msg + "; " + w
}

func (er *NError) Unwrap() error {
	return er.wrapped
}

func (er *NError) Is(err error) bool {
	i, ok := err.(*NError) // nolint:errorlint
	if !ok {
		return false
	}

	return i.id == er.id
}

func (er *NError) Wrap(err error) *NError {
	return er.derive(err)
}

func (er *NError) Errorf(s string, a ...interface{}) *NError {
	return er.derive(fmt.Errorf(s, a...)) // nolint:goerr113
}

// Call marks where the sentinel is returned.
func (er *NError) Call() *NError {
	return er.derive(nil)
}

func (er *NError) derive(wrapped error) *NError {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:]) // skip Callers, derive and the exported method

	return &NError{
		id:      er.id,
		msg:     er.msg,
		wrapped: wrapped,
		frames:  pcs[:n],
	}
}

func (er *NError) Format(st fmt.State, verb rune) {
	switch {
	case verb == 'q':
		_, _ = fmt.Fprintf(st, "%q", er.Error())
	case verb == 'v' && st.Flag('+'):
		_, _ = io.WriteString(st, er.msg)

		for _, pc := range er.frames {
			_, _ = fmt.Fprintf(st, "\n%+v", errors.Frame(pc))
		}

		if er.wrapped != nil {
			_, _ = fmt.Fprintf(st, "; %+v", er.wrapped)
		}
	default:
		_, _ = io.WriteString(st, er.Error())
	}
}

// StackTrace returns the frames of Wrap, Errorf or Call; without them, the
// frames of the wrapped error if it has.
func (er *NError) StackTrace() errors.StackTrace {
	if len(er.frames) > 0 {
		st := make(errors.StackTrace, len(er.frames))
		for i := range er.frames {
			st[i] = errors.Frame(er.frames[i])
		}

		return st
	}

	var i interface{ StackTrace() errors.StackTrace }
	if errors.As(er.wrapped, &i) {
		return i.StackTrace()
	}

	return nil
}
