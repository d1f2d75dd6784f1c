package interp

import (
	"loom/internal/diag"
	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
	"loom/internal/value"
)

// callFunction implements the 11-step call protocol of §4.5.12: evaluate
// and deep-copy the actual arguments while still at the call site, open a
// fresh scope level, jump to the callee's pre-scanned position, bind the
// formals from the popped argument list, run the body, then jump back to
// resume right after the call. The reader is never fast-forwarded through
// the callee's body on the way out — whatever position it's left at when
// the body finishes running is simply abandoned by the jump home.
func (in *Interpreter) callFunction(name string, span source.Span) *value.Object {
	args := in.pushArguments()
	in.scope.AppendLevel()

	returnTo := in.reader.Save()

	id := in.scope.MustSearch(name, span)
	if id.Value.Tag != value.Position {
		in.fatal(diag.TypeError, "%s is not callable", name)
	}
	pos, ok := id.Value.PosVal.(lexer.Position)
	if !ok {
		in.fatal(diag.TypeError, "%s is not callable", name)
	}
	in.reader.Jump(pos)
	in.expect(token.Ident)

	in.popArguments(args)
	in.expect(token.RPar)

	in.execBlock()

	result := in.returnValue
	if result == nil {
		result = in.heap.NewInt(0)
	}
	in.returnValue = nil

	in.heap.Decref(args)

	in.reader.Jump(returnTo)
	in.accept(token.RPar)

	in.scope.RemoveLevel()

	return result
}

// pushArguments evaluates the call's actual argument list at the call
// site, left to right, collecting a deep copy of each into a transient
// list the callee will read its formals from.
func (in *Interpreter) pushArguments() *value.Object {
	list := in.heap.NewList()
	in.expect(token.LPar)
	for in.reader.Kind() != token.RPar {
		arg := in.evalAssignment()
		value.AppendOwned(list, value.DeepCopy(in.heap, arg))
		in.heap.Decref(arg)
		if in.reader.Kind() == token.RPar {
			break
		}
		in.expect(token.Comma)
	}
	return list
}

// popArguments declares the callee's formal parameters, binding each to
// the next value popped off the front of args. A formal with no
// corresponding actual argument is a SyntaxError; actual arguments with
// no corresponding formal are silently discarded (freed when args is
// decref'd back in callFunction) — the reference lets a caller pass more
// than a function reads.
func (in *Interpreter) popArguments(args *value.Object) {
	in.expect(token.LPar)
	for in.reader.Kind() != token.RPar {
		if in.reader.Kind() != token.Ident {
			in.fatal(diag.SyntaxError, "expected identifier instead of %s", in.reader.Kind())
		}
		name := in.reader.Text()
		span := in.reader.Span()
		id := in.scope.Add(name, span)

		arg, ok := value.RemoveFront(args)
		if !ok {
			in.fatal(diag.SyntaxError, "no argument to assign to %s", name)
		}
		in.scope.Bind(id, arg)
		in.heap.Decref(arg)

		in.expect(token.Ident)
		in.accept(token.Comma)
	}
}

// returnStmt implements §4.5.11. A bare DEDENT reaching statement
// dispatch is routed here too (statement.go's dispatch already consumed
// it) — it can only happen at the top level, since every block construct
// intercepts DEDENT itself before it would ever reach execStatement, and
// Run stops the program on a top-level return exactly as a function-level
// one stops the call.
func (in *Interpreter) returnStmt() ctrl {
	if in.reader.Kind() == token.NEWLINE {
		in.returnValue = in.heap.NewInt(0)
	} else {
		in.returnValue = in.evalComma()
	}
	in.expect(token.NEWLINE)
	return ctrlReturn
}
