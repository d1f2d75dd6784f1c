package value

// Assign mutates dst's payload in place, coercing src to dst's existing
// tag. Declared identifiers keep one stable Object for their whole
// lifetime; every `=` (declaration initializer or assignment expression)
// goes through here rather than rebinding the identifier to a new Object,
// so an alias obtained before the assignment observes the new value too —
// matching a statically typed slot, not a reference cell.
func Assign(h *Heap, dst, src *Object) error {
	src = Deref(src)
	switch dst.Tag {
	case Char:
		v, err := AsChar(src)
		if err != nil {
			return err
		}
		dst.CharVal = v
	case Int:
		v, err := AsInt(src)
		if err != nil {
			return err
		}
		dst.IntVal = v
	case Float:
		v, err := AsFloat(src)
		if err != nil {
			return err
		}
		dst.FloatVal = v
	case Str:
		strObj := ToStrObj(h, src)
		dst.StrVal = strObj.StrVal
		h.Decref(strObj)
	case List:
		list, err := AsList(src)
		if err != nil {
			return err
		}
		for n := dst.ListVal.Head; n != nil; {
			next := n.Next
			h.Decref(n.Val)
			n = next
		}
		dst.ListVal.Head, dst.ListVal.Tail, dst.ListVal.Len = nil, nil, 0
		for n := list.ListVal.Head; n != nil; n = n.Next {
			appendOwned(dst, deepCopy(h, n.Val))
		}
	default:
		return typeError("unsupported operand type(s) for operation =: %s and %s", dst.Tag, src.Tag)
	}
	return nil
}

// Default returns a fresh zero value for a declared type: numeric 0, empty
// string, or an empty list. Used by a declaration before any initializer
// is evaluated.
func Default(h *Heap, tag Tag) *Object {
	switch tag {
	case Char:
		return h.NewChar(0)
	case Int:
		return h.NewInt(0)
	case Float:
		return h.NewFloat(0)
	case Str:
		return h.NewStr("")
	case List:
		return h.NewList()
	default:
		return h.None()
	}
}
