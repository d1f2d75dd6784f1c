package interp

import (
	"bytes"
	"testing"

	"loom/internal/diag"
	"loom/internal/source"
)

// newTestInterpreter runs src against a fresh Interpreter and returns
// whatever it wrote to stdout. Any fatal diagnostic fails the test loudly
// (FatalReporter.Fatal panics after its Exit hook runs, which t.Fatal
// can't intercept, so none of these programs are expected to hit one).
func newTestInterpreter(t *testing.T, src string) string {
	t.Helper()
	files := source.NewFileSet()
	var out bytes.Buffer
	reporter := &diag.FatalReporter{
		Print: func(d diag.Diagnostic) { t.Logf("diagnostic: %s: %s", d.Code, d.Message) },
		Exit:  func(int) {},
	}
	in := NewFromSource(files, reporter, t.Name(), []byte(src), Options{Out: &out})
	in.Run()
	return out.String()
}

func TestScenarioArithmeticPromotion(t *testing.T) {
	got := newTestInterpreter(t, "int a = 3\nfloat b = 2.0\nprint a + b\n")
	want := "5\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioListIterationAndSlicing(t *testing.T) {
	got := newTestInterpreter(t, "list xs = [1,2,3,4,5]\nfor x in xs\n    print x\nprint xs[1:4]\n")
	want := "1\n2\n3\n4\n5\n[2, 3, 4]\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioFunctionForwardReference(t *testing.T) {
	src := "print f(10)\n" +
		"def f(n)\n" +
		"    if n <= 1\n" +
		"        return 1\n" +
		"    return n * f(n-1)\n"
	got := newTestInterpreter(t, src)
	want := "3628800\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioBreakAndContinue(t *testing.T) {
	src := "int i = 0\n" +
		"while i < 10\n" +
		"    i = i + 1\n" +
		"    if i == 3\n" +
		"        continue\n" +
		"    if i == 6\n" +
		"        break\n" +
		"    print i\n"
	got := newTestInterpreter(t, src)
	want := "1\n2\n4\n5\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioStringConcatAndIn(t *testing.T) {
	src := "str s = \"abc\"\n" +
		"print s + \"de\"\n" +
		"print \"b\" in s\n"
	got := newTestInterpreter(t, src)
	want := "abcde\n1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioReturnShortCircuitFromNesting(t *testing.T) {
	src := "def g()\n" +
		"    int i = 0\n" +
		"    while i < 100\n" +
		"        if i == 5\n" +
		"            return i\n" +
		"        i = i + 1\n" +
		"    return -1\n" +
		"print g()\n"
	got := newTestInterpreter(t, src)
	want := "5\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
