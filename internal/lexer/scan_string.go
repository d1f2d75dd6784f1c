package lexer

import (
	"loom/internal/diag"
	"loom/internal/token"
)

// scanQuoted consumes a char or string literal delimited by quote ('\'' or
// '"'). It does not interpret escapes or validate the char-literal length;
// that happens when the literal's text is turned into a value, since the
// lexer only needs to find the matching close quote. It does catch the two
// conditions that make the literal unrecoverable for the rest of the file:
// an embedded raw newline and running off the end of the file.
func (lx *Lexer) scanQuoted(quote byte, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.reporter.Fatal(diag.SyntaxError, sp, "unterminated literal")
		}
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.reporter.Fatal(diag.SyntaxError, sp, "newline in literal")
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		default:
			lx.cursor.Bump()
		}
	}
}
