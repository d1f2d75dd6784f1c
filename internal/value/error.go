package value

import (
	"fmt"

	"loom/internal/diag"
)

// OpError is returned by any fallible value operation. The caller (always
// internal/interp) has the source span the operation was evaluated at and
// turns this into a diag.Reporter.Fatal call.
type OpError struct {
	Code diag.Code
	Msg  string
}

func (e *OpError) Error() string { return e.Msg }

func typeError(format string, args ...any) error {
	return &OpError{Code: diag.TypeError, Msg: fmt.Sprintf(format, args...)}
}

func valueError(format string, args ...any) error {
	return &OpError{Code: diag.ValueError, Msg: fmt.Sprintf(format, args...)}
}

func indexError(format string, args ...any) error {
	return &OpError{Code: diag.IndexError, Msg: fmt.Sprintf(format, args...)}
}

func zeroDivisionError(format string, args ...any) error {
	return &OpError{Code: diag.ZeroDivisionError, Msg: fmt.Sprintf(format, args...)}
}
