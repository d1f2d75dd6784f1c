package interp

import (
	"loom/internal/diag"
	"loom/internal/token"
	"loom/internal/value"
)

// execStatement dispatches on one token of lookahead (§4.5.4) and runs
// exactly one statement, leaving the reader on the first token after it.
func (in *Interpreter) execStatement() ctrl {
	switch in.reader.Kind() {
	case token.KwChar:
		in.reader.Next()
		in.declaration(value.Char)
	case token.KwInt:
		in.reader.Next()
		in.declaration(value.Int)
	case token.KwFloat:
		in.reader.Next()
		in.declaration(value.Float)
	case token.KwStr:
		in.reader.Next()
		in.declaration(value.Str)
	case token.KwList:
		in.reader.Next()
		in.declaration(value.List)
	case token.KwDef:
		in.reader.Next()
		in.skipFunction()
	case token.KwIf:
		in.reader.Next()
		return in.ifStmt()
	case token.KwWhile:
		in.reader.Next()
		return in.whileStmt()
	case token.KwDo:
		in.reader.Next()
		return in.doStmt()
	case token.KwFor:
		in.reader.Next()
		return in.forStmt()
	case token.KwPrint:
		in.reader.Next()
		in.printStmt()
	case token.KwInput:
		in.reader.Next()
		in.inputStmt()
	case token.KwReturn:
		in.reader.Next()
		return in.returnStmt()
	case token.DEDENT:
		in.reader.Next()
		return in.returnStmt()
	case token.KwBreak:
		in.reader.Next()
		in.expect(token.NEWLINE)
		in.breakPending = true
	case token.KwContinue:
		in.reader.Next()
		in.expect(token.NEWLINE)
		in.continuePending = true
	case token.KwPass:
		in.reader.Next()
		in.expect(token.NEWLINE)
	case token.KwImport:
		in.reader.Next()
		in.importStmt()
	case token.ENDMARKER:
		// no-op; the caller's loop stops on ENDMARKER anyway.
	default:
		in.expressionStmt()
	}
	return ctrlNone
}

// declaration implements §4.5.5: type id ( '=' expr )? ( ',' id ( '=' expr )? )* NEWLINE.
func (in *Interpreter) declaration(tag value.Tag) {
	for {
		if in.reader.Kind() != token.Ident {
			in.fatal(diag.SyntaxError, "expected identifier instead of %s", in.reader.Kind())
		}
		name := in.reader.Text()
		span := in.reader.Span()
		id := in.scope.Add(name, span)
		def := value.Default(in.heap, tag)
		in.scope.Bind(id, def)
		in.heap.Decref(def)
		in.reader.Next()

		if in.accept(token.Assign) {
			rhs := in.evalAssignment()
			if err := value.Assign(in.heap, id.Value, rhs); err != nil {
				in.fatalErr(err)
			}
			in.heap.Decref(rhs)
		}

		if in.accept(token.NEWLINE) {
			return
		}
		in.expect(token.Comma)
	}
}

// expressionStmt evaluates a comma-expression for its side effects and
// discards the result.
func (in *Interpreter) expressionStmt() {
	obj := in.evalComma()
	in.heap.Decref(obj)
	in.expect(token.NEWLINE)
}

