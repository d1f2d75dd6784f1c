package diag

import (
	"testing"

	"loom/internal/source"
)

func TestFatalReporterPrintsAndExits(t *testing.T) {
	var printed Diagnostic
	var exitCode int
	exited := false

	r := &FatalReporter{
		Print: func(d Diagnostic) { printed = d },
		Exit: func(code int) {
			exited = true
			exitCode = code
		},
	}

	// Fatal never returns: it panics once Exit has been called.
	func() {
		defer func() { _ = recover() }()
		r.Fatal(NameError, source.Span{Start: 1, End: 2}, "undeclared identifier %q", "x")
	}()

	if !exited || exitCode != 1 {
		t.Fatalf("expected Exit(1) to be called, exited=%v code=%d", exited, exitCode)
	}
	if printed.Code != NameError || printed.Message != `undeclared identifier "x"` {
		t.Fatalf("unexpected diagnostic: %+v", printed)
	}
}

func TestCollectingReporterUnwindsWithoutExiting(t *testing.T) {
	bag := NewBag(8)
	r := &CollectingReporter{Bag: bag}

	func() {
		defer Recover()
		r.Fatal(SyntaxError, source.Span{}, "unexpected token")
		t.Fatal("unreachable: Fatal must unwind via panic")
	}()

	if bag.Len() != 1 || bag.Items()[0].Code != SyntaxError {
		t.Fatalf("expected one SyntaxError diagnostic, got %+v", bag.Items())
	}
}

func TestRecoverRepanicsUnrelatedValues(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Recover to re-raise an unrelated panic")
		}
	}()
	func() {
		defer Recover()
		panic("boom")
	}()
}
