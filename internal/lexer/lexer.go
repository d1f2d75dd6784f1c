package lexer

import (
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// Lexer turns one file's bytes into indentation-aware tokens: a physical
// line that holds no tokens produces nothing, the first token of a new
// logical line is preceded by INDENT/DEDENT tokens as the measured
// indentation rises or falls, and every line that does produce a token is
// closed by a NEWLINE.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter

	indents     []int // indentation-width stack, always starts at [0]
	pending     []token.Token
	atLineStart bool
	done        bool // ENDMARKER already queued
}

// New returns a Lexer over file. Fatal lexical errors (unterminated
// literals, inconsistent indentation, unknown characters) are reported to
// reporter and terminate the process.
func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		reporter:    reporter,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Next returns the next token, advancing the lexer.
func (lx *Lexer) Next() token.Token {
	for {
		if len(lx.pending) > 0 {
			t := lx.pending[0]
			lx.pending = lx.pending[1:]
			return t
		}
		if lx.done {
			return lx.structuralToken(token.ENDMARKER)
		}
		if lx.atLineStart {
			if lx.consumeLineStart() {
				continue
			}
		}
		return lx.scanInline()
	}
}

// consumeLineStart skips blank lines and measures the indentation of the
// next non-blank line, queuing INDENT/DEDENT tokens as needed. It returns
// true when the caller should re-check lx.pending before scanning inline.
func (lx *Lexer) consumeLineStart() bool {
	for {
		width := 0
		for isHorizontalSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
			width++
		}
		switch {
		case lx.cursor.EOF():
			lx.atLineStart = false
			lx.queueEOF()
			return true
		case lx.cursor.Peek() == '\n':
			lx.cursor.Bump()
			continue
		default:
			lx.atLineStart = false
			lx.applyIndent(width)
			return len(lx.pending) > 0
		}
	}
}

func (lx *Lexer) applyIndent(width int) {
	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.pending = append(lx.pending, lx.structuralToken(token.INDENT))
	case width < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.pending = append(lx.pending, lx.structuralToken(token.DEDENT))
		}
		if lx.indents[len(lx.indents)-1] != width {
			lx.reporter.Fatal(diag.SyntaxError, lx.structuralSpan(), "unindent does not match any outer indentation level")
		}
	}
}

func (lx *Lexer) queueEOF() {
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.pending = append(lx.pending, lx.structuralToken(token.DEDENT))
	}
	lx.pending = append(lx.pending, lx.structuralToken(token.ENDMARKER))
	lx.done = true
}

// scanInline returns the next token within the current logical line,
// closing the line with a NEWLINE once it runs out of content.
func (lx *Lexer) scanInline() token.Token {
	for isHorizontalSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		sp := lx.structuralSpan()
		lx.cursor.Eat('\n')
		lx.atLineStart = true
		return token.Token{Kind: token.NEWLINE, Span: sp}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanQuoted('\'', token.CharLit)
	case ch == '"':
		return lx.scanQuoted('"', token.StrLit)
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) structuralToken(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: lx.structuralSpan()}
}

func (lx *Lexer) structuralSpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// snapshot captures everything about the lexer's state that save()/jump()
// must restore for the resumed token stream to be indistinguishable from
// the one that would have been produced without the intervening scan.
type snapshot struct {
	offset      uint32
	indents     []int
	pending     []token.Token
	atLineStart bool
	done        bool
}

func (lx *Lexer) snapshot() snapshot {
	return snapshot{
		offset:      lx.cursor.Off,
		indents:     append([]int(nil), lx.indents...),
		pending:     append([]token.Token(nil), lx.pending...),
		atLineStart: lx.atLineStart,
		done:        lx.done,
	}
}

func (lx *Lexer) restore(s snapshot) {
	lx.cursor.Off = s.offset
	lx.indents = append([]int(nil), s.indents...)
	lx.pending = append([]token.Token(nil), s.pending...)
	lx.atLineStart = s.atLineStart
	lx.done = s.done
}
