package interp

import "loom/internal/token"

// execBlock runs one indented statement block (§4.6): NEWLINE INDENT
// statement+ , stopping with the reader on the closing DEDENT (or
// ENDMARKER) without consuming it — the caller decides whether to consume
// it or jump away. A return signal from any statement propagates straight
// through without fast-forwarding: whoever eventually consumes ctrlReturn
// is going to jump the reader to a saved continuation anyway, so the
// token stream left behind here is never read again.
func (in *Interpreter) execBlock() ctrl {
	in.expect(token.NEWLINE)
	in.expect(token.INDENT)

	for {
		if c := in.execStatement(); c == ctrlReturn {
			return ctrlReturn
		}
		if in.reader.Kind() == token.DEDENT || in.reader.Kind() == token.ENDMARKER {
			return ctrlNone
		}
		if in.breakPending || in.continuePending {
			in.fastForwardBlock()
			return ctrlNone
		}
	}
}

// fastForwardBlock skips whatever is left of the current block once a
// break or continue has been requested inside it, stopping on the DEDENT
// that closes the block (not consuming it), matching execBlock's normal
// exit point.
func (in *Interpreter) fastForwardBlock() {
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
}
