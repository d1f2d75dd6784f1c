package lexer

import (
	"testing"

	"loom/internal/source"
)

func fileFromString(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(fileFromString("a\nb"))

	if c.EOF() {
		t.Fatal("expected not EOF at start")
	}
	if got := c.Bump(); got != 'a' {
		t.Fatalf("got %q, want 'a'", got)
	}
	if got := c.Bump(); got != '\n' {
		t.Fatalf("got %q, want '\\n'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Fatalf("got %q, want 'b'", got)
	}
	if !c.EOF() {
		t.Fatal("expected EOF at end")
	}
	if got := c.Peek(); got != 0 {
		t.Fatalf("Peek() at EOF = %q, want 0", got)
	}
	if got := c.Bump(); got != 0 {
		t.Fatalf("Bump() at EOF = %q, want 0", got)
	}
}

func TestCursorMarkAndReset(t *testing.T) {
	c := NewCursor(fileFromString("abcdef"))
	c.Bump()
	c.Bump()
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 2 || sp.End != 4 {
		t.Fatalf("got span %+v, want Start=2 End=4", sp)
	}

	c.Reset(m)
	if c.Off != 2 {
		t.Fatalf("Reset did not rewind, Off=%d", c.Off)
	}
	if c.Peek() != 'c' {
		t.Fatalf("after Reset, Peek() = %q, want 'c'", c.Peek())
	}
}

func TestCursorEat(t *testing.T) {
	c := NewCursor(fileFromString("(x)"))
	if !c.Eat('(') {
		t.Fatal("expected Eat('(') to succeed")
	}
	if c.Eat(')') {
		t.Fatal("expected Eat(')') to fail on 'x'")
	}
	if c.Peek() != 'x' {
		t.Fatalf("Eat should not consume on mismatch, Peek() = %q", c.Peek())
	}
}

func TestCursorPeek2(t *testing.T) {
	c := NewCursor(fileFromString("=="))
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '=' || b1 != '=' {
		t.Fatalf("Peek2() = %q %q ok=%v", b0, b1, ok)
	}

	c2 := NewCursor(fileFromString("="))
	if _, _, ok := c2.Peek2(); ok {
		t.Fatal("expected Peek2 to fail with only one byte left")
	}
}
