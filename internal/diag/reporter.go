package diag

import (
	"fmt"
	"os"

	"loom/internal/source"
)

// Reporter is the sink the core reports fatal diagnostics to. There is no
// recoverable error path in the language: Fatal never returns control to
// its caller.
type Reporter interface {
	Fatal(code Code, span source.Span, format string, args ...any)
}

// FatalReporter prints a diagnostic and terminates the process. cmd/loom
// wires this up for `run`, where a fatal condition ends the whole
// invocation; the REPL uses CollectingReporter instead.
type FatalReporter struct {
	// Print formats and writes the diagnostic. Required.
	Print func(Diagnostic)
	// Exit terminates the process; defaults to os.Exit. Tests override it to
	// observe the exit code without actually exiting.
	Exit func(code int)
}

func (r *FatalReporter) Fatal(code Code, span source.Span, format string, args ...any) {
	r.Print(NewError(code, span, fmt.Sprintf(format, args...)))
	exit := r.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)
	panic("diag: Reporter.Fatal must not return")
}

// collectedFatal is the panic value CollectingReporter.Fatal raises to
// unwind the current evaluation without terminating the process.
type collectedFatal struct{}

// CollectingReporter records fatal diagnostics into a Bag rather than
// exiting, so that `loom check` can report a problem in one file and move
// on to the next.
type CollectingReporter struct {
	Bag *Bag
}

func (r *CollectingReporter) Fatal(code Code, span source.Span, format string, args ...any) {
	r.Bag.Add(NewError(code, span, fmt.Sprintf(format, args...)))
	panic(collectedFatal{})
}

// Recover stops the collectedFatal panic raised by Fatal. Any other panic
// value is re-raised. Callers wrap one file's check in:
//
//	defer diag.Recover()
func Recover() {
	if r := recover(); r != nil {
		if _, ok := r.(collectedFatal); !ok {
			panic(r)
		}
	}
}
