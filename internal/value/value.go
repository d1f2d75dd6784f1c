package value

// ListData is the payload of a List object: a doubly linked chain of
// ListNode cells, owned by the list.
type ListData struct {
	Head, Tail *Node
	Len        int
}

// Node is a single cell of a list; it owns one reference to Val.
type Node struct {
	Val        *Object
	Next, Prev *Node
}

// Object is a single heap-allocated, reference-counted value. It carries a
// type tag, a refcount, and exactly the fields its tag uses — only one of
// the payload fields below is meaningful for any given Tag.
type Object struct {
	Tag      Tag
	Refcount int32

	CharVal  byte
	IntVal   int64
	FloatVal float64
	StrVal   string
	ListVal  *ListData

	// NodeVal holds the owned value for a ListNode object.
	NodeVal *Object

	// PosVal is an opaque reader checkpoint; internal/interp knows its
	// concrete type (a lexer.Position value). internal/value never inspects it.
	PosVal any

	// prev/next thread this object into the heap's live-object registry
	// when debug mode is enabled; nil otherwise.
	prev, next *Object
}

// Deref returns op itself, unless op is a ListNode, in which case it
// returns the value the node owns. Every operator in this package calls
// Deref on its operands first, matching the source's uniform rule that a
// list node is never visible to an expression directly.
func Deref(op *Object) *Object {
	if op.Tag == ListNode {
		return op.NodeVal
	}
	return op
}

// IsSequence reports whether op (after dereferencing) supports indexing,
// slicing, `len`, and `in`.
func IsSequence(op *Object) bool {
	op = Deref(op)
	return op.Tag == Str || op.Tag == List
}
