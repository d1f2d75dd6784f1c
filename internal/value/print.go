package value

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Repr renders obj's value the way Print would write it, as a string. Used
// by the debug-registry dump and by list printing, which recurses into
// each element's textual form.
func Repr(obj *Object) string {
	obj = Deref(obj)
	switch obj.Tag {
	case Char:
		return string(obj.CharVal)
	case Int:
		return strconv.FormatInt(obj.IntVal, 10)
	case Float:
		return formatFloat(obj.FloatVal)
	case Str:
		return obj.StrVal
	case List:
		var b strings.Builder
		b.WriteByte('[')
		n := obj.ListVal.Head
		for n != nil {
			b.WriteString(ElementRepr(n.Val))
			if n.Next != nil {
				b.WriteString(", ")
			}
			n = n.Next
		}
		b.WriteByte(']')
		return b.String()
	case Position:
		return ""
	case None:
		return "none"
	default:
		return ""
	}
}

// ElementRepr renders a value the way it appears inside a list's printed
// form — strings are quoted there, unlike at the top level.
func ElementRepr(obj *Object) string {
	obj = Deref(obj)
	if obj.Tag == Str {
		return strconv.Quote(obj.StrVal)
	}
	return Repr(obj)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'G', 16, 64)
}

// Print writes obj's textual form to w, the way the `print` statement does.
func Print(w io.Writer, obj *Object) {
	fmt.Fprint(w, Repr(obj))
}
