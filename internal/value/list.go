package value

import "strings"

// Length returns the number of elements in a string or list.
func Length(seq *Object) (int64, error) {
	seq = Deref(seq)
	switch seq.Tag {
	case Str:
		return int64(len(seq.StrVal)), nil
	case List:
		return int64(seq.ListVal.Len), nil
	default:
		return 0, typeError("type %s is not subscriptable", seq.Tag)
	}
}

func normalizeIndex(i, length int64) (int64, error) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, indexError("index %d out of range", i)
	}
	return i, nil
}

// Item returns seq[i] as a freshly allocated value (refcount 1): the byte
// at i for a string, a deep copy of the i-th element for a list. Negative i
// counts from the end.
func Item(h *Heap, seq *Object, i int64) (*Object, error) {
	seq = Deref(seq)
	length, err := Length(seq)
	if err != nil {
		return nil, err
	}
	idx, err := normalizeIndex(i, length)
	if err != nil {
		return nil, err
	}
	switch seq.Tag {
	case Str:
		return h.NewChar(seq.StrVal[idx]), nil
	case List:
		n := nodeAt(seq, idx)
		return deepCopy(h, n.Val), nil
	default:
		return nil, typeError("type %s is not subscriptable", seq.Tag)
	}
}

func nodeAt(list *Object, idx int64) *Node {
	n := list.ListVal.Head
	for i := int64(0); i < idx; i++ {
		n = n.Next
	}
	return n
}

func clampSliceBounds(a, b, length int64) (int64, int64) {
	if a < 0 {
		a += length
	}
	if b < 0 {
		b += length
	}
	if a < 0 {
		a = 0
	}
	if b > length {
		b = length
	}
	if a > b {
		a = b
	}
	return a, b
}

// Slice returns seq[a:b], clamped to [0, len]; a > b yields an empty
// result, never an error.
func Slice(h *Heap, seq *Object, a, b int64) (*Object, error) {
	seq = Deref(seq)
	length, err := Length(seq)
	if err != nil {
		return nil, err
	}
	a, b = clampSliceBounds(a, b, length)

	switch seq.Tag {
	case Str:
		return h.NewStr(seq.StrVal[a:b]), nil
	case List:
		result := h.NewList()
		n := nodeAt(seq, a)
		for i := a; i < b; i++ {
			appendOwned(result, deepCopy(h, n.Val))
			n = n.Next
		}
		return result, nil
	default:
		return nil, typeError("type %s is not subscriptable", seq.Tag)
	}
}

// appendOwned appends val to list, taking ownership of the caller's
// reference (the caller must not decref val afterward).
func appendOwned(list *Object, val *Object) {
	node := &Node{Val: val}
	if list.ListVal.Tail == nil {
		list.ListVal.Head = node
	} else {
		node.Prev = list.ListVal.Tail
		list.ListVal.Tail.Next = node
	}
	list.ListVal.Tail = node
	list.ListVal.Len++
}

// AppendOwned appends val to list without incrementing its refcount,
// taking over the caller's own reference — used when val was just
// allocated (e.g. by DeepCopy) purely to live inside this list.
func AppendOwned(list *Object, val *Object) { appendOwned(list, val) }

// Append binds val into list at the end, incrementing val's refcount —
// used when the caller keeps its own reference to val and releases it
// separately.
func Append(h *Heap, list *Object, val *Object) {
	h.Incref(val)
	appendOwned(list, val)
}

// RemoveFront detaches list's first element and returns it, transferring
// ownership to the caller (no refcount change); ok is false if list is
// empty. Used to pop the next positional argument off a call's transient
// argument list while binding formal parameters.
func RemoveFront(list *Object) (val *Object, ok bool) {
	n := list.ListVal.Head
	if n == nil {
		return nil, false
	}
	list.ListVal.Head = n.Next
	if list.ListVal.Head != nil {
		list.ListVal.Head.Prev = nil
	} else {
		list.ListVal.Tail = nil
	}
	list.ListVal.Len--
	val = n.Val
	n.Val, n.Next, n.Prev = nil, nil, nil
	return val, true
}

// deepCopy returns a value independent of src at every level: scalars copy
// by value, lists copy every element recursively. Refcount 1, tracked in h's
// live-object registry exactly like any other allocation.
func deepCopy(h *Heap, src *Object) *Object {
	src = Deref(src)
	switch src.Tag {
	case Char:
		return h.alloc(&Object{Tag: Char, CharVal: src.CharVal})
	case Int:
		return h.alloc(&Object{Tag: Int, IntVal: src.IntVal})
	case Float:
		return h.alloc(&Object{Tag: Float, FloatVal: src.FloatVal})
	case Str:
		return h.alloc(&Object{Tag: Str, StrVal: src.StrVal})
	case List:
		dst := h.alloc(&Object{Tag: List, ListVal: &ListData{}})
		for n := src.ListVal.Head; n != nil; n = n.Next {
			appendOwned(dst, deepCopy(h, n.Val))
		}
		return dst
	case None:
		return src
	default:
		return h.alloc(&Object{Tag: src.Tag})
	}
}

// DeepCopy is the exported form of deepCopy, used by assignment and by
// call-time argument passing to give the callee its own independent value.
func DeepCopy(h *Heap, src *Object) *Object { return deepCopy(h, src) }

func concatLists(h *Heap, op1, op2 *Object) (*Object, error) {
	result := h.NewList()
	for n := op1.ListVal.Head; n != nil; n = n.Next {
		appendOwned(result, deepCopy(h, n.Val))
	}
	for n := op2.ListVal.Head; n != nil; n = n.Next {
		appendOwned(result, deepCopy(h, n.Val))
	}
	return result, nil
}

func repeatStr(h *Heap, op1, op2 *Object) (*Object, error) {
	var s string
	var n int64
	if op1.Tag == Str {
		s, _ = AsStr(op1)
		n, _ = AsInt(op2)
	} else {
		s, _ = AsStr(op2)
		n, _ = AsInt(op1)
	}
	if n <= 0 {
		return h.NewStr(""), nil
	}
	return h.NewStr(strings.Repeat(s, int(n))), nil
}

func repeatList(h *Heap, op1, op2 *Object) (*Object, error) {
	var src *Object
	var n int64
	if op1.Tag == List {
		src = op1
		n, _ = AsInt(op2)
	} else {
		src = op2
		n, _ = AsInt(op1)
	}
	result := h.NewList()
	for i := int64(0); i < n; i++ {
		for node := src.ListVal.Head; node != nil; node = node.Next {
			appendOwned(result, deepCopy(h, node.Val))
		}
	}
	return result, nil
}
