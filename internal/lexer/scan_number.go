package lexer

import "loom/internal/token"

// scanNumber consumes an integer or float literal: digit+ optionally
// followed by a '.' fraction and/or an exponent. There are no hex, octal,
// or digit-separator forms in this language.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
			kind = token.FloatLit
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
