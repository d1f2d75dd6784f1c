// Package diagfmt renders diagnostics and raw token streams for humans:
// the run/repl fatal-error path, and the check/tokenize dev-tooling
// subcommands.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"loom/internal/diag"
	"loom/internal/source"
)

var (
	codeColor = color.New(color.FgRed, color.Bold)
	pathColor = color.New(color.Bold)
	caretColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.FgCyan)
)

// One renders a single diagnostic: its located header line, a source
// excerpt with a caret under the primary span, and any notes. This is what
// FatalReporter.Print calls before the process exits.
func One(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	printHeader(w, d.Code, d.Primary, d.Message, fs, opts)
	printExcerpt(w, d.Primary, fs, opts)
	for _, n := range d.Notes {
		printHeader(w, 0, n.Span, n.Msg, fs, opts)
		printExcerpt(w, n.Span, fs, opts)
	}
}

// Pretty renders every diagnostic in bag (the caller should Sort it first),
// followed by a pluralized summary line. Used by `loom check`.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		One(w, d, fs, opts)
		fmt.Fprintln(w)
	}
	printSummary(w, bag.Len(), opts)
}

func printHeader(w io.Writer, code diag.Code, span source.Span, msg string, fs *source.FileSet, opts PrettyOpts) {
	path := formatPath(fs, span, opts.PathMode)
	start, _ := fs.Resolve(span)

	loc := fmt.Sprintf("%s:%d:%d:", path, start.Line, start.Col)
	if opts.Color {
		loc = pathColor.Sprint(loc)
	}

	if code == 0 {
		note := "note"
		if opts.Color {
			note = noteColor.Sprint(note)
		}
		fmt.Fprintf(w, "%s %s: %s\n", loc, note, msg)
		return
	}

	label := code.String()
	if opts.Color {
		label = codeColor.Sprint(label)
	}
	fmt.Fprintf(w, "%s %s: %s\n", loc, label, msg)
}

func printExcerpt(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	file := fs.Get(span.File)
	line := file.GetLine(start.Line)
	if line == "" && span.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	width := runewidth.StringWidth(truncateRunes(line, int(start.Col)-1))
	length := caretLength(start, end)
	caret := "    " + spaces(width) + "^" + tildes(length-1)
	if opts.Color {
		caret = "    " + spaces(width) + caretColor.Sprint("^"+tildes(length-1))
	}
	fmt.Fprintln(w, caret)
}

func caretLength(start, end source.LineCol) int {
	if end.Line != start.Line || end.Col <= start.Col {
		return 1
	}
	return int(end.Col - start.Col)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func tildes(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '~'
	}
	return string(b)
}

func printSummary(w io.Writer, n int, opts PrettyOpts) {
	p := message.NewPrinter(language.English)
	if n == 0 {
		p.Fprintln(w, "no errors")
		return
	}
	p.Fprintf(w, "%d %s\n", n, pluralize(n, "error", "errors"))
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func formatPath(fs *source.FileSet, span source.Span, mode PathMode) string {
	_ = mode
	return fs.Get(span.File).Path
}
