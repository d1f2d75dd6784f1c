package value

import "testing"

func TestItemNegativeIndex(t *testing.T) {
	h := NewHeap(false)
	l := h.NewList()
	Append(h, l, h.NewInt(1))
	Append(h, l, h.NewInt(2))
	Append(h, l, h.NewInt(3))

	got, err := Item(h, l, -1)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if got.IntVal != 3 {
		t.Fatalf("got %d, want 3", got.IntVal)
	}
}

func TestItemOutOfRange(t *testing.T) {
	h := NewHeap(false)
	l := h.NewList()
	Append(h, l, h.NewInt(1))

	if _, err := Item(h, l, 5); err == nil {
		t.Fatal("expected IndexError")
	}
}

func TestStringItemByte(t *testing.T) {
	h := NewHeap(false)
	s := h.NewStr("abc")
	got, err := Item(h, s, 1)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if got.CharVal != 'b' {
		t.Fatalf("got %q, want 'b'", got.CharVal)
	}
}

func TestSliceClampsAndHandlesEmptyRange(t *testing.T) {
	h := NewHeap(false)
	s := h.NewStr("hello")

	got, err := Slice(h, s, 1, 100)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if got.StrVal != "ello" {
		t.Fatalf("got %q, want %q", got.StrVal, "ello")
	}

	got, err = Slice(h, s, 3, 1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if got.StrVal != "" {
		t.Fatalf("got %q, want empty for a>b", got.StrVal)
	}
}

func TestSliceNegativeIndices(t *testing.T) {
	h := NewHeap(false)
	l := h.NewList()
	for i := int64(1); i <= 5; i++ {
		Append(h, l, h.NewInt(i))
	}
	got, err := Slice(h, l, 1, -1)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if got.ListVal.Len != 3 {
		t.Fatalf("Len = %d, want 3", got.ListVal.Len)
	}
}

func TestLengthRejectsNonSequence(t *testing.T) {
	h := NewHeap(false)
	if _, err := Length(h.NewInt(1)); err == nil {
		t.Fatal("expected TypeError")
	}
}

func TestRemoveFrontPopsInOrder(t *testing.T) {
	h := NewHeap(false)
	l := h.NewList()
	AppendOwned(l, h.NewInt(1))
	AppendOwned(l, h.NewInt(2))

	first, ok := RemoveFront(l)
	if !ok || first.IntVal != 1 {
		t.Fatalf("got %v, %v, want 1, true", first, ok)
	}
	second, ok := RemoveFront(l)
	if !ok || second.IntVal != 2 {
		t.Fatalf("got %v, %v, want 2, true", second, ok)
	}
	if l.ListVal.Len != 0 || l.ListVal.Head != nil || l.ListVal.Tail != nil {
		t.Fatalf("list not empty after draining: len=%d head=%v tail=%v", l.ListVal.Len, l.ListVal.Head, l.ListVal.Tail)
	}
	h.Decref(first)
	h.Decref(second)
}

func TestRemoveFrontOnEmptyList(t *testing.T) {
	h := NewHeap(false)
	l := h.NewList()
	if _, ok := RemoveFront(l); ok {
		t.Fatal("expected ok=false on an empty list")
	}
}

func TestAppendOwnedTakesOverRefcount(t *testing.T) {
	h := NewHeap(false)
	l := h.NewList()
	v := DeepCopy(h, h.NewInt(7))
	if v.Refcount != 1 {
		t.Fatalf("Refcount = %d, want 1", v.Refcount)
	}
	AppendOwned(l, v)
	if l.ListVal.Len != 1 || l.ListVal.Head.Val != v {
		t.Fatal("value not linked into the list")
	}
}
