package lexer

import (
	"loom/internal/diag"
	"loom/internal/token"
)

// scanOperatorOrPunct consumes one operator or delimiter token. Two-byte
// operators are tried before falling back to their one-byte prefix.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '>'):
		return emit(token.Diamond)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '!':
		return emit(token.Bang)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '(':
		return emit(token.LPar)
	case ')':
		return emit(token.RPar)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.reporter.Fatal(diag.SyntaxError, sp, "unexpected character %q", ch)
		return token.Token{}
	}
}
