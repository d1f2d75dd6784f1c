package value

import "math"

// coerceRank returns the numeric Tag both operands should be promoted to:
// the higher-ranked of the two (char < int < float).
func coerceRank(a, b Tag) Tag {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

func bothNumber(a, b *Object) bool {
	return a.Tag.IsNumber() && b.Tag.IsNumber()
}

// Add implements `+`: numeric+numeric promotes per coerceRank, string
// concatenation dispatches when either side is a string (the non-string
// side is converted via ToStrObj first), list+list concatenates with
// deep-copied elements.
func Add(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	switch {
	case bothNumber(op1, op2):
		return numericBinary(h, op1, op2, func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
	case op1.Tag == Str || op2.Tag == Str:
		s1 := ToStrObj(h, op1)
		s2 := ToStrObj(h, op2)
		result := h.NewStr(s1.StrVal + s2.StrVal)
		h.Decref(s1)
		h.Decref(s2)
		return result, nil
	case op1.Tag == List && op2.Tag == List:
		return concatLists(h, op1, op2)
	default:
		return nil, typeError("unsupported operand type(s) for operation +: %s and %s", op1.Tag, op2.Tag)
	}
}

// Sub implements binary `-`: numeric only.
func Sub(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !bothNumber(op1, op2) {
		return nil, typeError("unsupported operand type(s) for operation -: %s and %s", op1.Tag, op2.Tag)
	}
	return numericBinary(h, op1, op2, func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

// Mul implements `*`: numeric*numeric, or (str,int)/(int,str) repeat, or
// (list,int)/(int,list) repeat.
func Mul(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	switch {
	case bothNumber(op1, op2):
		return numericBinary(h, op1, op2, func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	case (op1.Tag.IsNumber() || op2.Tag.IsNumber()) && (op1.Tag == Str || op2.Tag == Str):
		return repeatStr(h, op1, op2)
	case (op1.Tag.IsNumber() || op2.Tag.IsNumber()) && (op1.Tag == List || op2.Tag == List):
		return repeatList(h, op1, op2)
	default:
		return nil, typeError("unsupported operand type(s) for operation *: %s and %s", op1.Tag, op2.Tag)
	}
}

// Div implements `/`: numeric only; integer division by zero is fatal.
func Div(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !bothNumber(op1, op2) {
		return nil, typeError("unsupported operand type(s) for operation /: %s and %s", op1.Tag, op2.Tag)
	}
	rank := coerceRank(op1.Tag, op2.Tag)
	if rank != Float {
		a, _ := AsInt(op1)
		b, _ := AsInt(op2)
		if b == 0 {
			return nil, zeroDivisionError("division by zero")
		}
		return h.NewInt(a / b), nil
	}
	a, _ := AsFloat(op1)
	b, _ := AsFloat(op2)
	return h.NewFloat(a / b), nil
}

// Mod implements `%`: integer modulus follows the sign of the dividend;
// float modulus matches IEEE fmod.
func Mod(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !bothNumber(op1, op2) {
		return nil, typeError("unsupported operand type(s) for operation %%: %s and %s", op1.Tag, op2.Tag)
	}
	rank := coerceRank(op1.Tag, op2.Tag)
	if rank != Float {
		a, _ := AsInt(op1)
		b, _ := AsInt(op2)
		if b == 0 {
			return nil, zeroDivisionError("division by zero")
		}
		return h.NewInt(a % b), nil
	}
	a, _ := AsFloat(op1)
	b, _ := AsFloat(op2)
	return h.NewFloat(math.Mod(a, b)), nil
}

// Negate implements unary `-`.
func Negate(h *Heap, op1 *Object) (*Object, error) {
	op1 = Deref(op1)
	if !op1.Tag.IsNumber() {
		return nil, typeError("unsupported operand type for operation -: %s", op1.Tag)
	}
	switch op1.Tag {
	case Float:
		f, _ := AsFloat(op1)
		return h.NewFloat(-f), nil
	case Char:
		i, _ := AsInt(op1)
		return h.NewChar(byte(-i)), nil
	default:
		i, _ := AsInt(op1)
		return h.NewInt(-i), nil
	}
}

// Posit implements unary `+`: a numeric operand comes back as a fresh copy
// of its own type, refcount 1, the same "same type in, same type out" rule
// Negate follows.
func Posit(h *Heap, op1 *Object) (*Object, error) {
	op1 = Deref(op1)
	if !op1.Tag.IsNumber() {
		return nil, typeError("unsupported operand type for operation +: %s", op1.Tag)
	}
	switch op1.Tag {
	case Float:
		f, _ := AsFloat(op1)
		return h.NewFloat(f), nil
	case Char:
		i, _ := AsInt(op1)
		return h.NewChar(byte(i)), nil
	default:
		i, _ := AsInt(op1)
		return h.NewInt(i), nil
	}
}

// Not implements unary `!`: logical not, returning int 0/1.
func Not(h *Heap, op1 *Object) (*Object, error) {
	op1 = Deref(op1)
	b, err := AsBool(op1)
	if err != nil {
		return nil, typeError("unsupported operand type for operation !: %s", op1.Tag)
	}
	if b {
		return h.NewInt(0), nil
	}
	return h.NewInt(1), nil
}

// Eq implements `==`: numeric/numeric, str/str, or list/list compare equal
// by value; operands of different shapes are unequal, never a type error.
func Eq(h *Heap, op1, op2 *Object) (*Object, error) {
	return h.NewInt(boolToInt(equalValues(op1, op2))), nil
}

// Ne implements `!=`/`<>`.
func Ne(h *Heap, op1, op2 *Object) (*Object, error) {
	return h.NewInt(boolToInt(!equalValues(op1, op2))), nil
}

func equalValues(op1, op2 *Object) bool {
	op1, op2 = Deref(op1), Deref(op2)
	switch {
	case bothNumber(op1, op2):
		a, _ := AsFloat(op1)
		b, _ := AsFloat(op2)
		return a == b
	case op1.Tag == Str && op2.Tag == Str:
		return op1.StrVal == op2.StrVal
	case op1.Tag == List && op2.Tag == List:
		return listsEqual(op1, op2)
	default:
		return false
	}
}

func listsEqual(op1, op2 *Object) bool {
	if op1.ListVal.Len != op2.ListVal.Len {
		return false
	}
	n1, n2 := op1.ListVal.Head, op2.ListVal.Head
	for n1 != nil {
		if !equalValues(n1.Val, n2.Val) {
			return false
		}
		n1, n2 = n1.Next, n2.Next
	}
	return true
}

// relational implements `< <= > >=`, numeric operands only.
func relational(h *Heap, op1, op2 *Object, op byte) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !bothNumber(op1, op2) {
		return nil, typeError("unsupported operand type(s) for operation %c: %s and %s", op, op1.Tag, op2.Tag)
	}
	a, _ := AsFloat(op1)
	b, _ := AsFloat(op2)
	var result bool
	switch op {
	case '<':
		result = a < b
	case 'l': // <=
		result = a <= b
	case '>':
		result = a > b
	case 'g': // >=
		result = a >= b
	}
	return h.NewInt(boolToInt(result)), nil
}

func Lss(h *Heap, op1, op2 *Object) (*Object, error) { return relational(h, op1, op2, '<') }
func Leq(h *Heap, op1, op2 *Object) (*Object, error) { return relational(h, op1, op2, 'l') }
func Gtr(h *Heap, op1, op2 *Object) (*Object, error) { return relational(h, op1, op2, '>') }
func Geq(h *Heap, op1, op2 *Object) (*Object, error) { return relational(h, op1, op2, 'g') }

// Or implements `or`: numeric operands only, result int 0/1, no
// short-circuiting — the caller always evaluates both operands.
func Or(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !bothNumber(op1, op2) {
		return nil, typeError("unsupported operand type(s) for operation or: %s and %s", op1.Tag, op2.Tag)
	}
	a, _ := AsBool(op1)
	b, _ := AsBool(op2)
	return h.NewInt(boolToInt(a || b)), nil
}

// And implements `and`: same shape as Or.
func And(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !bothNumber(op1, op2) {
		return nil, typeError("unsupported operand type(s) for operation and: %s and %s", op1.Tag, op2.Tag)
	}
	a, _ := AsBool(op1)
	b, _ := AsBool(op2)
	return h.NewInt(boolToInt(a && b)), nil
}

// In implements `in`: op1 tested with Eq against each element of the
// sequence op2. A string's elements are chars, so a one-character string
// also matches a char element with the same byte (`"b" in "abc"` is 1).
func In(h *Heap, op1, op2 *Object) (*Object, error) {
	op1, op2 = Deref(op1), Deref(op2)
	if !IsSequence(op2) {
		return nil, typeError("%s is not subscriptable", op2.Tag)
	}
	n, err := Length(op2)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < n; i++ {
		item, err := Item(h, op2, i)
		if err != nil {
			return nil, err
		}
		if equalValues(op1, item) ||
			(op1.Tag == Str && item.Tag == Char && op1.StrVal == string([]byte{item.CharVal})) {
			h.Decref(item)
			return h.NewInt(1), nil
		}
		h.Decref(item)
	}
	return h.NewInt(0), nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func numericBinary(h *Heap, op1, op2 *Object, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) (*Object, error) {
	rank := coerceRank(op1.Tag, op2.Tag)
	if rank == Float {
		a, _ := AsFloat(op1)
		b, _ := AsFloat(op2)
		return h.NewFloat(floatOp(a, b)), nil
	}
	a, _ := AsInt(op1)
	b, _ := AsInt(op2)
	if rank == Char {
		return h.NewChar(byte(intOp(a, b))), nil
	}
	return h.NewInt(intOp(a, b)), nil
}
