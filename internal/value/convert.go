package value

import (
	"strconv"
	"strings"
)

// AsChar converts obj to a byte following numeric→numeric C-style cast,
// string→char by requiring exactly one (possibly escaped) character.
func AsChar(obj *Object) (byte, error) {
	obj = Deref(obj)
	switch obj.Tag {
	case Char:
		return obj.CharVal, nil
	case Int:
		return byte(obj.IntVal), nil
	case Float:
		return byte(obj.FloatVal), nil
	case Str:
		return StrToChar(obj.StrVal)
	default:
		return 0, valueError("cannot convert %s to char", obj.Tag)
	}
}

// AsInt converts obj to an int64.
func AsInt(obj *Object) (int64, error) {
	obj = Deref(obj)
	switch obj.Tag {
	case Char:
		return int64(obj.CharVal), nil
	case Int:
		return obj.IntVal, nil
	case Float:
		return int64(obj.FloatVal), nil
	case Str:
		return StrToInt(obj.StrVal)
	default:
		return 0, valueError("cannot convert %s to int", obj.Tag)
	}
}

// AsFloat converts obj to a float64.
func AsFloat(obj *Object) (float64, error) {
	obj = Deref(obj)
	switch obj.Tag {
	case Char:
		return float64(obj.CharVal), nil
	case Int:
		return float64(obj.IntVal), nil
	case Float:
		return obj.FloatVal, nil
	case Str:
		return StrToFloat(obj.StrVal)
	default:
		return 0, valueError("cannot convert %s to float", obj.Tag)
	}
}

// AsStr returns obj's string contents; only a Str value converts directly.
// Use ToStrObj for the canonical-textual-form conversion any type supports.
func AsStr(obj *Object) (string, error) {
	obj = Deref(obj)
	if obj.Tag != Str {
		return "", valueError("cannot convert %s to string", obj.Tag)
	}
	return obj.StrVal, nil
}

// AsList requires obj to already be a list; there is no implicit conversion
// into one.
func AsList(obj *Object) (*Object, error) {
	obj = Deref(obj)
	if obj.Tag != List {
		return nil, valueError("cannot convert %s to list", obj.Tag)
	}
	return obj, nil
}

// AsBool reports obj's truthiness: any nonzero numeric value is true.
func AsBool(obj *Object) (bool, error) {
	obj = Deref(obj)
	switch obj.Tag {
	case Char:
		return obj.CharVal != 0, nil
	case Int:
		return obj.IntVal != 0, nil
	case Float:
		return obj.FloatVal != 0, nil
	default:
		return false, valueError("cannot convert %s to bool", obj.Tag)
	}
}

// ToStrObj allocates a fresh Str object holding obj's canonical textual
// form: int as plain decimal, float in general form, char as its single
// byte, an existing string incref'd and returned as-is. Used both by
// explicit str() conversion and by mixed num+str concatenation.
func ToStrObj(h *Heap, obj *Object) *Object {
	obj = Deref(obj)
	switch obj.Tag {
	case Str:
		h.Incref(obj)
		return obj
	case Char:
		return h.NewStr(string(obj.CharVal))
	case Int:
		return h.NewStr(strconv.FormatInt(obj.IntVal, 10))
	case Float:
		return h.NewStr(formatFloat(obj.FloatVal))
	case None:
		return h.NewStr("none")
	default:
		return h.NewStr("")
	}
}

// StrToChar parses a character literal's unescaped text (the single byte,
// or the single character following a backslash) into its code. The set of
// legal escapes is exactly \0 \b \f \n \r \t \v \\ \' \".
func StrToChar(s string) (byte, error) {
	if s == "" {
		return 0, valueError("empty character constant")
	}
	if s[0] == '\\' {
		if len(s) < 2 {
			return 0, valueError("empty character constant")
		}
		c, err := unescapeByte(s[1])
		if err != nil {
			return 0, err
		}
		if len(s) > 2 {
			return 0, valueError("too many characters in character constant")
		}
		return c, nil
	}
	if len(s) > 1 {
		return 0, valueError("too many characters in character constant")
	}
	return s[0], nil
}

func unescapeByte(c byte) (byte, error) {
	switch c {
	case '0':
		return 0, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case '\\':
		return '\\', nil
	case '\'':
		return '\'', nil
	case '"':
		return '"', nil
	default:
		return 0, valueError("unknown escape sequence: \\%c", c)
	}
}

// UnescapeString resolves the same escape set as StrToChar across an
// entire string literal's raw lexeme text (without the surrounding quotes).
func UnescapeString(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", valueError("unterminated escape sequence")
		}
		c, err := unescapeByte(s[i+1])
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

// StrToInt parses s as a signed integer; the entire string must be
// consumed.
func StrToInt(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, valueError("cannot convert %q to int", s)
	}
	return i, nil
}

// StrToFloat parses s as a float; the entire string must be consumed.
func StrToFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, valueError("cannot convert %q to float", s)
	}
	return f, nil
}
