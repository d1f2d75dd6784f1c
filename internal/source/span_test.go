package source

import "testing"

func TestSpanEmpty(t *testing.T) {
	if !(Span{File: 1, Start: 5, End: 5}).Empty() {
		t.Fatalf("expected empty span")
	}
	if (Span{File: 1, Start: 5, End: 6}).Empty() {
		t.Fatalf("expected non-empty span")
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{Start: 10, End: 25}).Len(); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	want := Span{File: 1, Start: 5, End: 20}
	if got := a.Cover(b); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// b entirely inside a
	c := Span{File: 1, Start: 12, End: 14}
	if got := a.Cover(c); got != a {
		t.Fatalf("got %+v, want %+v", got, a)
	}
}

func TestSpanCoverDifferentFiles(t *testing.T) {
	a := Span{File: 1, Start: 0, End: 10}
	b := Span{File: 2, Start: 0, End: 10}
	if got := a.Cover(b); got != a {
		t.Fatalf("cover across files should return receiver unchanged, got %+v", got)
	}
}
