package scope

import (
	"testing"

	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/value"
)

func newTestTable(t *testing.T) (*Table, *value.Heap) {
	t.Helper()
	h := value.NewHeap(false)
	r := &diag.FatalReporter{
		Print: func(d diag.Diagnostic) {},
		Exit:  func(int) {},
	}
	return New(h, r), h
}

func TestAddThenSearchFindsInCurrentFrame(t *testing.T) {
	tbl, _ := newTestTable(t)
	id := tbl.Add("x", source.Span{})
	if got := tbl.Search("x"); got != id {
		t.Fatalf("Search did not return the identifier just added")
	}
}

func TestSearchIsInnermostFirst(t *testing.T) {
	tbl, h := newTestTable(t)
	outer := tbl.Add("x", source.Span{})
	tbl.Bind(outer, h.NewInt(1))

	tbl.AppendLevel()
	inner := tbl.Add("x", source.Span{})
	tbl.Bind(inner, h.NewInt(2))

	got := tbl.Search("x")
	if got != inner {
		t.Fatal("Search should find the innermost-frame declaration")
	}
	if got.Value.IntVal != 2 {
		t.Fatalf("got %d, want 2", got.Value.IntVal)
	}
}

func TestRemoveLevelReleasesBindings(t *testing.T) {
	tbl, h := newTestTable(t)
	tbl.AppendLevel()
	id := tbl.Add("y", source.Span{})
	val := h.NewInt(42)
	tbl.Bind(id, val)
	if val.Refcount != 2 {
		t.Fatalf("Refcount = %d, want 2 after Bind", val.Refcount)
	}

	tbl.RemoveLevel()
	if val.Refcount != 1 {
		t.Fatalf("Refcount = %d, want 1 after RemoveLevel decref", val.Refcount)
	}
}

func TestBindDecrefsPreviousValue(t *testing.T) {
	tbl, h := newTestTable(t)
	id := tbl.Add("z", source.Span{})
	first := h.NewInt(1)
	tbl.Bind(id, first)
	second := h.NewInt(2)
	tbl.Bind(id, second)

	if first.Refcount != 1 {
		t.Fatalf("previous binding's Refcount = %d, want 1 (the test's own reference) after replacement", first.Refcount)
	}
	if id.Value != second {
		t.Fatal("Bind should replace the identifier's current value")
	}
}

func TestSearchOrAddCreatesInCurrentFrameWhenMissing(t *testing.T) {
	tbl, _ := newTestTable(t)
	id := tbl.SearchOrAdd("loopvar")
	if id.Name != "loopvar" {
		t.Fatalf("got %q", id.Name)
	}
	if tbl.Search("loopvar") != id {
		t.Fatal("SearchOrAdd should have declared the identifier")
	}
}

func TestSearchOrAddReturnsExistingAcrossFrames(t *testing.T) {
	tbl, h := newTestTable(t)
	outer := tbl.Add("n", source.Span{})
	tbl.Bind(outer, h.NewInt(10))

	tbl.AppendLevel()
	got := tbl.SearchOrAdd("n")
	if got != outer {
		t.Fatal("SearchOrAdd should find an existing outer-frame identifier rather than shadow it")
	}
}
