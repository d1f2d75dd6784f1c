// Package interp fuses the recursive-descent parser with the evaluator: it
// drives a lexer.Reader one token at a time, allocates and operates on
// values from internal/value, and binds names through internal/scope.
// There is no intermediate AST — a statement is parsed and executed in the
// same pass.
package interp

import (
	"bufio"
	"io"

	"loom/internal/diag"
	"loom/internal/lexer"
	"loom/internal/scope"
	"loom/internal/source"
	"loom/internal/token"
	"loom/internal/value"
)

// Interpreter holds every piece of mutable state a running program needs:
// the token reader, the scope stack, the value heap, and the loop-control
// flags and return slot that the statement executor propagates. One
// Interpreter corresponds to one program run (or one REPL line, over the
// heap and scope the session shares).
type Interpreter struct {
	reader   *lexer.Reader
	scope    *scope.Table
	heap     *value.Heap
	reporter diag.Reporter
	files    *source.FileSet

	out   io.Writer
	in    *bufio.Reader
	debug bool

	// ownsScope is true when this Interpreter allocated its own module
	// frame rather than being handed one through Options.Scope — the
	// REPL passes its own table to keep the module frame (and every
	// earlier line's declarations) alive across one Interpreter per
	// line, so only the owning case pops it at the end of Run.
	ownsScope bool

	breakPending    bool
	continuePending bool
	returnValue     *value.Object
}

// Options configures a New Interpreter. Out and In default to nothing
// written/read if left nil — callers embedding the interpreter (the REPL,
// tests) normally set both.
type Options struct {
	Out   io.Writer
	In    io.Reader
	Debug bool

	// Heap and Scope let a caller reuse value storage and bindings across
	// several Interpreters — the REPL constructs one Interpreter per
	// accepted line but wants earlier lines' declarations and function
	// definitions to stay visible. Both default to a fresh instance.
	Heap  *value.Heap
	Scope *scope.Table
}

// New returns an Interpreter reading path as its entry file.
func New(files *source.FileSet, reporter diag.Reporter, path string, opts Options) (*Interpreter, error) {
	reader, err := lexer.NewReader(files, reporter, path)
	if err != nil {
		return nil, err
	}
	return newInterpreter(files, reporter, reader, opts), nil
}

// NewFromSource is New for an in-memory program, used by the REPL and by
// tests that don't want to touch the filesystem.
func NewFromSource(files *source.FileSet, reporter diag.Reporter, name string, src []byte, opts Options) *Interpreter {
	reader := lexer.NewReaderFromSource(files, reporter, name, src)
	return newInterpreter(files, reporter, reader, opts)
}

func newInterpreter(files *source.FileSet, reporter diag.Reporter, reader *lexer.Reader, opts Options) *Interpreter {
	heap := opts.Heap
	if heap == nil {
		heap = value.NewHeap(opts.Debug)
	}
	table := opts.Scope
	ownsScope := table == nil
	if table == nil {
		table = scope.New(heap, reporter)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	var stdin *bufio.Reader
	if opts.In != nil {
		stdin = bufio.NewReader(opts.In)
	}
	return &Interpreter{
		reader:    reader,
		scope:     table,
		heap:      heap,
		reporter:  reporter,
		files:     files,
		out:       out,
		in:        stdin,
		debug:     opts.Debug,
		ownsScope: ownsScope,
	}
}

// Heap exposes the interpreter's value heap, used by the CLI to dump the
// debug live-object registry after Run returns.
func (in *Interpreter) Heap() *value.Heap { return in.heap }

// Run executes the entry sequence: pre-scan the whole file for function
// definitions, reset to the start, then execute statements until
// ENDMARKER. A return statement reached outside any call acts the same
// way it does inside one, just with nothing waiting to resume — it stops
// the program immediately instead of jumping back to a caller.
//
// When this Interpreter owns its module frame (the common case — every
// top-level Interpreter except the REPL's, which shares one table across
// a run per line), Run pops it before returning, so normal exit leaves no
// live objects behind: every top-level declaration and pre-scanned
// function position gets decref'd along with the frame.
func (in *Interpreter) Run() {
	in.prescan()
	in.reader.Reset()
	for in.reader.Kind() != token.ENDMARKER {
		if in.execStatement() == ctrlReturn {
			break
		}
	}
	if in.ownsScope {
		in.scope.RemoveLevel()
	}
}

func (in *Interpreter) fatal(code diag.Code, format string, args ...any) {
	in.reporter.Fatal(code, in.reader.Span(), format, args...)
}

// fatalErr reports an error returned by internal/value, unwrapping its
// OpError taxonomy code; any other error type is this core's own bug.
func (in *Interpreter) fatalErr(err error) {
	if oe, ok := err.(*value.OpError); ok {
		in.fatal(oe.Code, "%s", oe.Msg)
		return
	}
	in.fatal(diag.SystemError, "%s", err.Error())
}

// expect requires the current token to have kind k, reporting SyntaxError
// otherwise, then advances past it.
func (in *Interpreter) expect(k token.Kind) token.Token {
	t := in.reader.Token()
	if t.Kind != k {
		in.fatal(diag.SyntaxError, "expected %s instead of %s", k, t.Kind)
	}
	in.reader.Next()
	return t
}

// accept advances past the current token and reports true if it has kind k;
// otherwise it leaves the reader untouched and reports false.
func (in *Interpreter) accept(k token.Kind) bool {
	if in.reader.Kind() != k {
		return false
	}
	in.reader.Next()
	return true
}
