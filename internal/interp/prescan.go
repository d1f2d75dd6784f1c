package interp

import (
	"loom/internal/diag"
	"loom/internal/token"
)

// prescan walks the entry file from the start, registering every `def`
// name in the module frame bound to a position at the function's name
// token — jumping there and consuming the identifier lands the reader at
// the formal-parameter list's opening LPAR, which is exactly where a call
// needs to resume. Nothing is executed; bodies are skipped wholesale.
func (in *Interpreter) prescan() {
	in.reader.Reset()
	in.prescanFile()
}

func (in *Interpreter) prescanFunction() {
	if in.reader.Kind() != token.Ident {
		in.fatal(diag.SyntaxError, "missing identifier after function definition")
	}
	name := in.reader.Text()
	pos := in.reader.Save()
	id := in.scope.Add(name, in.reader.Span())
	posObj := in.heap.NewPosition(pos)
	in.scope.Bind(id, posObj)
	in.heap.Decref(posObj)
	in.skipFunction()
}

// skipFunction consumes a function signature and body without executing
// it: the name, the formal-parameter list up to its line's NEWLINE, then
// the indented body block (§4.5.3).
func (in *Interpreter) skipFunction() {
	in.expect(token.Ident)
	in.expect(token.LPar)
	for in.reader.Kind() != token.NEWLINE && in.reader.Kind() != token.ENDMARKER {
		in.reader.Next()
	}
	in.skipBlock()
}

// skipBlock consumes NEWLINE INDENT, then balanced INDENT/DEDENT pairs
// until the nesting returns to zero, then one more token past the closing
// DEDENT (§4.5.3). Used by prescan and by if/else to discard a branch that
// doesn't execute.
func (in *Interpreter) skipBlock() {
	in.expect(token.NEWLINE)
	in.expect(token.INDENT)
	level := 1
	for level != 0 && in.reader.Kind() != token.ENDMARKER {
		in.reader.Next()
		switch in.reader.Kind() {
		case token.INDENT:
			level++
		case token.DEDENT:
			level--
		}
	}
	in.reader.Next()
}
