package value

import "testing"

func TestHeapAllocRefcountStartsAtOne(t *testing.T) {
	h := NewHeap(true)
	obj := h.NewInt(42)
	if obj.Refcount != 1 {
		t.Fatalf("Refcount = %d, want 1", obj.Refcount)
	}
	if h.LiveCount() != 1 {
		t.Fatalf("LiveCount() = %d, want 1", h.LiveCount())
	}
}

func TestIncrefDecref(t *testing.T) {
	h := NewHeap(true)
	obj := h.NewInt(1)
	h.Incref(obj)
	if obj.Refcount != 2 {
		t.Fatalf("Refcount = %d, want 2", obj.Refcount)
	}
	h.Decref(obj)
	if obj.Refcount != 1 {
		t.Fatalf("Refcount = %d, want 1", obj.Refcount)
	}
	if h.LiveCount() != 1 {
		t.Fatalf("expected still live")
	}
	h.Decref(obj)
	if h.LiveCount() != 0 {
		t.Fatalf("LiveCount() = %d, want 0 after decref to zero", h.LiveCount())
	}
}

func TestDecrefFreesListChildren(t *testing.T) {
	h := NewHeap(true)
	list := h.NewList()
	Append(h, list, h.NewInt(1))
	Append(h, list, h.NewInt(2))
	// Append incref'd its own allocations too, so decref the callers' refs.
	h.Decref(list.ListVal.Head.Val)
	h.Decref(list.ListVal.Tail.Val)

	if h.LiveCount() != 3 { // list + two elements, each still refcount 1
		t.Fatalf("LiveCount() = %d, want 3", h.LiveCount())
	}
	h.Decref(list)
	if h.LiveCount() != 0 {
		t.Fatalf("LiveCount() = %d, want 0 after freeing the list", h.LiveCount())
	}
}

func TestNoneSingletonIsPinned(t *testing.T) {
	h := NewHeap(true)
	none := h.None()
	h.Incref(none)
	h.Decref(none)
	h.Decref(none)
	h.Decref(none)
	if none.Refcount != 1 {
		t.Fatalf("none refcount mutated: %d", none.Refcount)
	}
}

func TestDeepCopyListIsIndependent(t *testing.T) {
	h := NewHeap(false)
	src := h.NewList()
	Append(h, src, h.NewInt(1))

	dst := DeepCopy(h, src)

	// Mutate dst's only element in place; src's element must be unaffected.
	dst.ListVal.Head.Val.IntVal = 99
	if src.ListVal.Head.Val.IntVal != 1 {
		t.Fatalf("deep copy shares storage: src mutated to %d", src.ListVal.Head.Val.IntVal)
	}
	if dst.ListVal.Head.Val == src.ListVal.Head.Val {
		t.Fatal("deep copy returned the same node value pointer")
	}
}

func TestReprFormsMatchReferenceOutput(t *testing.T) {
	h := NewHeap(false)
	tests := []struct {
		obj  *Object
		want string
	}{
		{h.NewChar('a'), "a"},
		{h.NewInt(42), "42"},
		{h.NewFloat(2.5), "2.5"},
		{h.NewStr("hi"), "hi"},
		{h.None(), "none"},
	}
	for _, tt := range tests {
		if got := Repr(tt.obj); got != tt.want {
			t.Errorf("Repr(%s) = %q, want %q", tt.obj.Tag, got, tt.want)
		}
	}
}

func TestReprList(t *testing.T) {
	h := NewHeap(false)
	list := h.NewList()
	Append(h, list, h.NewInt(1))
	Append(h, list, h.NewStr("x"))
	if got, want := Repr(list), `[1, "x"]`; got != want {
		t.Fatalf("Repr(list) = %q, want %q", got, want)
	}
}
