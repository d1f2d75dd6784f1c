package interp

import (
	"bytes"
	"testing"

	"loom/internal/diag"
	"loom/internal/source"
)

// TestDeepCopyIndependenceAfterListAssignment exercises testable property
// #4: after `list2 = list1`, mutating one must not affect the other — the
// assignment deep-copies every element into the destination rather than
// sharing nodes.
func TestDeepCopyIndependenceAfterListAssignment(t *testing.T) {
	src := "list a = [1,2,3]\n" +
		"list b = a\n" +
		"a = [99]\n" +
		"print a\n" +
		"print b\n"
	got := newTestInterpreter(t, src)
	want := "[99]\n[1, 2, 3]\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestScopeRestoredAfterCallReturn exercises testable property #5: a
// function's locals don't leak into the caller's frame, and a name the
// caller declared before the call is still visible and unchanged after.
func TestScopeRestoredAfterCallReturn(t *testing.T) {
	src := "int n = 5\n" +
		"def f(n)\n" +
		"    int extra = n * 2\n" +
		"    return extra\n" +
		"print f(n)\n" +
		"print n\n"
	got := newTestInterpreter(t, src)
	want := "10\n5\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestLoopControlFlagsClearAfterBreak exercises testable property #6: once
// a loop exits via break-pending, the flag is cleared and doesn't leak into
// a later, unrelated loop.
func TestLoopControlFlagsClearAfterBreak(t *testing.T) {
	src := "int i = 0\n" +
		"while i < 10\n" +
		"    i = i + 1\n" +
		"    if i == 3\n" +
		"        break\n" +
		"int j = 0\n" +
		"while j < 2\n" +
		"    j = j + 1\n" +
		"    print j\n" +
		"print i\n"
	got := newTestInterpreter(t, src)
	want := "1\n2\n3\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestPreScanAllowsForwardCallBeforeDefinition exercises testable property
// #7: a function may be called at a source position above its own `def`,
// because pre-scan has already bound its name to a position before any
// statement executes.
func TestPreScanAllowsForwardCallBeforeDefinition(t *testing.T) {
	src := "print double(21)\n" +
		"def double(n)\n" +
		"    return n * 2\n"
	got := newTestInterpreter(t, src)
	want := "42\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestNoLiveObjectsLeakedOnNormalExit exercises testable property #1: after
// a non-diverging program's Interpreter.Run returns, the debug live-object
// registry is empty. Every value the program itself stops referencing along
// the way (the transient int discarded by an expression statement, the
// short-lived call-argument list) is freed promptly rather than
// accumulating, and Run pops the module frame itself at normal exit, so
// even `kept` and `square`'s pre-scanned position don't outlive the run.
func TestNoLiveObjectsLeakedOnNormalExit(t *testing.T) {
	files := source.NewFileSet()
	var out bytes.Buffer
	reporter := &diag.FatalReporter{
		Print: func(d diag.Diagnostic) { t.Logf("diagnostic: %s: %s", d.Code, d.Message) },
		Exit:  func(int) {},
	}
	src := "def square(n)\n" +
		"    return n * n\n" +
		"square(7)\n" +
		"int kept = 1\n"
	in := NewFromSource(files, reporter, t.Name(), []byte(src), Options{Out: &out, Debug: true})
	in.Run()

	if got := in.Heap().LiveCount(); got != 0 {
		t.Fatalf("LiveCount() = %d, want 0", got)
	}
}
