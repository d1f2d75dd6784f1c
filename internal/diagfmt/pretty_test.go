package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"loom/internal/diag"
	"loom/internal/source"
)

func TestPrettyReportsCodeAndMessage(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte("int x = \n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SyntaxError, source.Span{File: id, Start: 8, End: 9}, "expected expression"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "test.lm:1:9:") {
		t.Fatalf("expected located header, got:\n%s", out)
	}
	if !strings.Contains(out, "SyntaxError") {
		t.Fatalf("expected code name, got:\n%s", out)
	}
	if !strings.Contains(out, "expected expression") {
		t.Fatalf("expected message, got:\n%s", out)
	}
	if !strings.Contains(out, "1 error") {
		t.Fatalf("expected summary line, got:\n%s", out)
	}
}

func TestPrettyCaretUnderPrimarySpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte("int x = y\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.NameError, source.Span{File: id, Start: 8, End: 9}, "undefined name 'y'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "int x = y") {
		t.Fatalf("expected source excerpt, got:\n%s", out)
	}
	if !strings.Contains(out, "        ^") {
		t.Fatalf("expected caret aligned under 'y', got:\n%s", out)
	}
}

func TestPrettyNotesAppendedAfterPrimary(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte("def f()\n    pass\nf(1)\n"))

	bag := diag.NewBag(10)
	d := diag.NewError(diag.TypeError, source.Span{File: id, Start: 17, End: 21}, "too many arguments")
	d = d.WithNote(source.Span{File: id, Start: 0, End: 7}, "function defined here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "test.lm:1:1: note:") {
		t.Fatalf("expected note with location, got:\n%s", out)
	}
	if !strings.Contains(out, "function defined here") {
		t.Fatalf("expected note message, got:\n%s", out)
	}
}

func TestPrettySummaryPluralizesErrorCount(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte("a\nb\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.NameError, source.Span{File: id, Start: 0, End: 1}, "undefined name 'a'"))
	bag.Add(diag.NewError(diag.NameError, source.Span{File: id, Start: 2, End: 3}, "undefined name 'b'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "2 errors") {
		t.Fatalf("expected plural summary, got:\n%s", buf.String())
	}
}

func TestPrettyNoDiagnosticsReportsNoErrors(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "no errors") {
		t.Fatalf("expected no-errors summary, got:\n%s", buf.String())
	}
}
