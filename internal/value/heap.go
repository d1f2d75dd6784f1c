package value

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Heap is the single allocator and reference-count authority for every
// value the interpreter creates. It is held by the interpreter and passed
// explicitly rather than kept as package-level state, so a program never
// has more than one live Heap and tests can run in parallel.
type Heap struct {
	debug      bool
	head, tail *Object // live-object registry, used only when debug is set
	live       int

	none *Object
}

// NewHeap returns a Heap. When debug is true, every allocation is tracked
// in a live-object registry that can be dumped with DumpDSV/DumpMsgpack —
// the Go equivalent of object.c's enqueue/dequeue list under #ifdef DEBUG.
func NewHeap(debug bool) *Heap {
	h := &Heap{debug: debug}
	h.none = &Object{Tag: None, Refcount: 1}
	return h
}

func (h *Heap) track(obj *Object) {
	if !h.debug {
		return
	}
	if h.head == nil {
		h.head = obj
	} else {
		obj.prev = h.tail
		h.tail.next = obj
	}
	h.tail = obj
	h.live++
}

func (h *Heap) untrack(obj *Object) {
	if !h.debug {
		return
	}
	if obj.next == nil {
		if obj.prev == nil {
			h.head, h.tail = nil, nil
		} else {
			h.tail = obj.prev
			h.tail.next = nil
		}
	} else if obj.prev == nil {
		h.head = obj.next
		h.head.prev = nil
	} else {
		obj.prev.next = obj.next
		obj.next.prev = obj.prev
	}
	obj.prev, obj.next = nil, nil
	h.live--
}

func (h *Heap) alloc(obj *Object) *Object {
	obj.Refcount = 1
	h.track(obj)
	return obj
}

func (h *Heap) NewChar(v byte) *Object     { return h.alloc(&Object{Tag: Char, CharVal: v}) }
func (h *Heap) NewInt(v int64) *Object     { return h.alloc(&Object{Tag: Int, IntVal: v}) }
func (h *Heap) NewFloat(v float64) *Object { return h.alloc(&Object{Tag: Float, FloatVal: v}) }
func (h *Heap) NewStr(v string) *Object    { return h.alloc(&Object{Tag: Str, StrVal: v}) }
func (h *Heap) NewList() *Object           { return h.alloc(&Object{Tag: List, ListVal: &ListData{}}) }
func (h *Heap) NewPosition(pos any) *Object {
	return h.alloc(&Object{Tag: Position, PosVal: pos})
}

// None returns the process's singleton none value. Its refcount is pinned:
// Incref/Decref are no-ops on it.
func (h *Heap) None() *Object { return h.none }

// LiveCount returns the number of currently tracked live objects. Only
// meaningful when the Heap was constructed with debug enabled.
func (h *Heap) LiveCount() int { return h.live }

// Incref raises obj's reference count by one.
func (h *Heap) Incref(obj *Object) {
	if obj == nil || obj == h.none {
		return
	}
	obj.Refcount++
}

// Decref lowers obj's reference count by one, freeing it and its owned
// children when the count reaches zero.
func (h *Heap) Decref(obj *Object) {
	if obj == nil || obj == h.none {
		return
	}
	obj.Refcount--
	if obj.Refcount > 0 {
		return
	}
	h.free(obj)
}

func (h *Heap) free(obj *Object) {
	switch obj.Tag {
	case List:
		for n := obj.ListVal.Head; n != nil; {
			next := n.Next
			h.Decref(n.Val)
			n.Val, n.Next, n.Prev = nil, nil, nil
			n = next
		}
		obj.ListVal.Head, obj.ListVal.Tail = nil, nil
		obj.ListVal.Len = 0
	case ListNode:
		h.Decref(obj.NodeVal)
		obj.NodeVal = nil
	}
	h.untrack(obj)
}

// DumpDSV writes the live-object registry as semicolon-separated rows with
// header "object;refcount;type;value", matching object.c's dump_object.
func (h *Heap) DumpDSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "object;refcount;type;value"); err != nil {
		return err
	}
	for obj := h.head; obj != nil; obj = obj.next {
		if _, err := fmt.Fprintf(bw, "%p;%d;%s;%s\n", obj, obj.Refcount, obj.Tag, Repr(obj)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type liveObjectRow struct {
	Refcount int32  `msgpack:"refcount"`
	Type     string `msgpack:"type"`
	Value    string `msgpack:"value"`
}

// DumpMsgpack writes the live-object registry in binary msgpack form, an
// alternative to DumpDSV for tooling that prefers a compact format.
func (h *Heap) DumpMsgpack(w io.Writer) error {
	rows := make([]liveObjectRow, 0, h.live)
	for obj := h.head; obj != nil; obj = obj.next {
		rows = append(rows, liveObjectRow{Refcount: obj.Refcount, Type: obj.Tag.String(), Value: Repr(obj)})
	}
	enc := msgpack.NewEncoder(w)
	return enc.Encode(rows)
}
