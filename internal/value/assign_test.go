package value

import "testing"

func TestAssignCoercesToDestTag(t *testing.T) {
	h := NewHeap(false)
	dst := h.NewInt(0)
	if err := Assign(h, dst, h.NewFloat(3.9)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if dst.IntVal != 3 {
		t.Fatalf("got %d, want 3 (float truncated to dest's int tag)", dst.IntVal)
	}
}

func TestAssignToStringUsesCanonicalForm(t *testing.T) {
	h := NewHeap(false)
	dst := h.NewStr("")
	if err := Assign(h, dst, h.NewInt(42)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if dst.StrVal != "42" {
		t.Fatalf("got %q, want %q", dst.StrVal, "42")
	}
}

func TestAssignListDeepCopiesAndIsIndependent(t *testing.T) {
	h := NewHeap(false)
	src := h.NewList()
	Append(h, src, h.NewInt(1))
	dst := h.NewList()

	if err := Assign(h, dst, src); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if dst.ListVal.Len != 1 {
		t.Fatalf("Len = %d, want 1", dst.ListVal.Len)
	}

	dst.ListVal.Head.Val.IntVal = 999
	if src.ListVal.Head.Val.IntVal != 1 {
		t.Fatal("mutating dst's element changed src: assignment did not deep-copy")
	}
}

func TestAssignRejectsNonListSourceForListDest(t *testing.T) {
	h := NewHeap(false)
	dst := h.NewList()
	if err := Assign(h, dst, h.NewInt(1)); err == nil {
		t.Fatal("expected error assigning a non-list into a list destination")
	}
}

func TestDefaultValuesAreZero(t *testing.T) {
	h := NewHeap(false)
	if got := Default(h, Int); got.IntVal != 0 {
		t.Fatalf("got %d", got.IntVal)
	}
	if got := Default(h, Str); got.StrVal != "" {
		t.Fatalf("got %q", got.StrVal)
	}
	if got := Default(h, List); got.ListVal.Len != 0 {
		t.Fatalf("got len %d", got.ListVal.Len)
	}
}
