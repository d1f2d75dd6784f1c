package interp

import (
	"fmt"
	"strings"

	"loom/internal/diag"
	"loom/internal/token"
	"loom/internal/value"
)

// printStmt implements §4.5.10: one or more comma-separated values, each
// an assignment_expr, written in their canonical textual form. The
// reference leaves the exact separator up to the implementation; this one
// joins values with a single space and ends the whole statement with one
// newline.
func (in *Interpreter) printStmt() {
	first := true
	for {
		obj := in.evalAssignment()
		if !first {
			fmt.Fprint(in.out, " ")
		}
		first = false
		value.Print(in.out, obj)
		in.heap.Decref(obj)
		if !in.accept(token.Comma) {
			break
		}
	}
	fmt.Fprintln(in.out)
	in.expect(token.NEWLINE)
}

// inputStmt implements §4.5.10: an optional string-literal prompt printed
// with no trailing newline, then a line read from stdin and parsed as the
// target identifier's current type — the identifier must already exist,
// unlike for's loop variable. The freshly scanned value replaces whatever
// the identifier held, matching the reference's identifier.bind rather
// than an in-place assignment.
func (in *Interpreter) inputStmt() {
	for {
		if in.reader.Kind() == token.StrLit {
			raw := stripQuotes(in.reader.Text())
			prompt, err := value.UnescapeString(raw)
			if err != nil {
				in.fatalErr(err)
			}
			fmt.Fprint(in.out, prompt)
			in.reader.Next()
		}

		if in.reader.Kind() != token.Ident {
			in.fatal(diag.SyntaxError, "expected identifier instead of %s", in.reader.Kind())
		}
		name := in.reader.Text()
		span := in.reader.Span()
		id := in.scope.MustSearch(name, span)

		line := in.readLine()
		obj, err := in.scanValue(id.Value.Tag, line)
		if err != nil {
			in.fatalErr(err)
		}
		in.scope.Bind(id, obj)
		in.heap.Decref(obj)

		in.accept(token.Ident)
		if !in.accept(token.Comma) {
			break
		}
	}
	in.expect(token.NEWLINE)
}

// readLine reads one line from stdin, trimming its trailing newline. A
// missing stdin (no Options.In given) reads as an empty line.
func (in *Interpreter) readLine() string {
	if in.in == nil {
		return ""
	}
	line, err := in.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// scanValue parses a line of input text as tag's type, the way obj_scan
// coerces raw stdin text per the target's declared type.
func (in *Interpreter) scanValue(tag value.Tag, line string) (*value.Object, error) {
	switch tag {
	case value.Char:
		c, err := value.StrToChar(line)
		if err != nil {
			return nil, err
		}
		return in.heap.NewChar(c), nil
	case value.Int:
		n, err := value.StrToInt(line)
		if err != nil {
			return nil, err
		}
		return in.heap.NewInt(n), nil
	case value.Float:
		f, err := value.StrToFloat(line)
		if err != nil {
			return nil, err
		}
		return in.heap.NewFloat(f), nil
	case value.Str:
		return in.heap.NewStr(line), nil
	default:
		return nil, &value.OpError{Code: diag.TypeError, Msg: fmt.Sprintf("unsupported type for input: %s", tag)}
	}
}
