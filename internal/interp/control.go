package interp

import (
	"loom/internal/diag"
	"loom/internal/token"
	"loom/internal/value"
)

// evalCondition evaluates a comma_expr and converts it to bool, the shape
// every construct below tests its controlling expression with.
func (in *Interpreter) evalCondition() bool {
	obj := in.evalComma()
	b, err := value.AsBool(obj)
	in.heap.Decref(obj)
	if err != nil {
		in.fatalErr(err)
	}
	return b
}

// ifStmt implements §4.5.6. The branch not taken is discarded with
// skipBlock rather than executed, so its side effects never happen.
func (in *Interpreter) ifStmt() ctrl {
	if in.evalCondition() {
		if c := in.execBlock(); c == ctrlReturn {
			return ctrlReturn
		}
		in.expect(token.DEDENT)
		if in.accept(token.KwElse) {
			in.skipBlock()
		}
		return ctrlNone
	}

	in.skipBlock()
	if in.accept(token.KwElse) {
		if c := in.execBlock(); c == ctrlReturn {
			return ctrlReturn
		}
		in.expect(token.DEDENT)
	}
	return ctrlNone
}

// whileStmt implements §4.5.7. The condition is always re-evaluated at the
// top of every pass, even the one that discovers do_break is set — the
// reference's `condition() && !do_break` evaluates its left side first, so
// a break only short-circuits the *next* re-check, not the one in flight.
func (in *Interpreter) whileStmt() ctrl {
	in.breakPending, in.continuePending = false, false
	loop := in.reader.Save()

	for in.evalCondition() && !in.breakPending {
		if c := in.execBlock(); c == ctrlReturn {
			return ctrlReturn
		}
		in.continuePending = false
		in.reader.Jump(loop)
	}

	in.breakPending = false
	in.skipBlock()
	return ctrlNone
}

// doStmt implements §4.5.8: the body always runs at least once.
func (in *Interpreter) doStmt() ctrl {
	in.breakPending, in.continuePending = false, false
	loop := in.reader.Save()

	for {
		in.reader.Jump(loop)
		if c := in.execBlock(); c == ctrlReturn {
			return ctrlReturn
		}
		in.continuePending = false
		in.expect(token.DEDENT)
		in.expect(token.KwWhile)
		if !(in.evalCondition() && !in.breakPending) {
			break
		}
	}

	in.breakPending = false
	in.expect(token.NEWLINE)
	return ctrlNone
}

// forStmt implements §4.5.9: the loop variable is created if it doesn't
// already exist, bound to a successive element of sequence on each pass,
// and unbound again once the pass completes — no scope frame of its own.
func (in *Interpreter) forStmt() ctrl {
	if in.reader.Kind() != token.Ident {
		in.fatal(diag.SyntaxError, "expected identifier instead of %s", in.reader.Kind())
	}
	id := in.scope.SearchOrAdd(in.reader.Text())
	in.expect(token.Ident)
	in.expect(token.KwIn)

	sequence := in.evalComma()
	length, err := value.Length(sequence)
	if err != nil {
		in.fatalErr(err)
	}

	in.breakPending, in.continuePending = false, false
	loop := in.reader.Save()

	for i := int64(0); i < length && !in.breakPending; i++ {
		item, err := value.Item(in.heap, sequence, i)
		if err != nil {
			in.fatalErr(err)
		}
		in.scope.Bind(id, item)
		in.heap.Decref(item)
		if c := in.execBlock(); c == ctrlReturn {
			in.scope.Unbind(id)
			in.heap.Decref(sequence)
			return ctrlReturn
		}
		in.scope.Unbind(id)
		in.continuePending = false
		in.reader.Jump(loop)
	}

	in.breakPending = false
	in.skipBlock()
	in.heap.Decref(sequence)
	return ctrlNone
}
