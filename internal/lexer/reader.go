package lexer

import (
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/token"
)

// frame is one open file's lexer, wrapped so Reader can stack them for
// import.
type frame struct {
	lx *Lexer
}

// Position is a resumable checkpoint in a Reader's token stream: which file
// it was taken in, the token that was current, and enough of that file's
// lexer state that jump() is indistinguishable from never having scanned
// past save(). The core wraps this in a refcounted value; Position itself
// carries no ownership.
type Position struct {
	file source.FileID
	cur  token.Token
	snap snapshot
}

// Reader is the core's single view of source text. It combines the two
// external collaborators the interpreter consumes as one: a Scanner
// (Token/Text/Next) and a Reader (Reset/Save/Jump plus the file stack
// import pushes onto).
type Reader struct {
	files    *source.FileSet
	reporter diag.Reporter
	stack    []frame
	cur      token.Token
}

// NewReader opens path from disk as the entry file and scans its first
// token.
func NewReader(files *source.FileSet, reporter diag.Reporter, path string) (*Reader, error) {
	id, err := files.Load(path)
	if err != nil {
		return nil, err
	}
	return newReaderAt(files, reporter, id), nil
}

// NewReaderFromSource positions a Reader over an in-memory buffer (the REPL
// or a program supplied as a string), registered under name.
func NewReaderFromSource(files *source.FileSet, reporter diag.Reporter, name string, src []byte) *Reader {
	id := files.AddVirtual(name, src)
	return newReaderAt(files, reporter, id)
}

func newReaderAt(files *source.FileSet, reporter diag.Reporter, id source.FileID) *Reader {
	r := &Reader{files: files, reporter: reporter}
	r.stack = []frame{{lx: New(files.Get(id), reporter)}}
	r.cur = r.top().Next()
	return r
}

func (r *Reader) top() *Lexer {
	return r.stack[len(r.stack)-1].lx
}

// Token returns the current token.
func (r *Reader) Token() token.Token {
	return r.cur
}

// Kind returns the current token's kind, the form most call sites match on.
func (r *Reader) Kind() token.Kind {
	return r.cur.Kind
}

// Text returns the current token's lexeme.
func (r *Reader) Text() string {
	return r.cur.Text
}

// Span returns the current token's source location, for diagnostics.
func (r *Reader) Span() source.Span {
	return r.cur.Span
}

// Next advances to the next token in the file on top of the stack.
func (r *Reader) Next() {
	r.cur = r.top().Next()
}

// Reset reopens the entry file (bottom of the stack) from its beginning
// and discards any import frames above it. The pre-scan pass calls this
// before the execution pass reads the same file a second time.
func (r *Reader) Reset() {
	entry := r.stack[0].lx.file
	r.stack = []frame{{lx: New(entry, r.reporter)}}
	r.cur = r.top().Next()
}

// Save captures the current position in the file on top of the stack.
func (r *Reader) Save() Position {
	return Position{file: r.top().file.ID, cur: r.cur, snap: r.top().snapshot()}
}

// Jump restores the reader to a previously saved Position in the file that
// is currently on top of the stack. Jumping across a still-open import
// frame is a programming error in the caller; PopFile must run first.
func (r *Reader) Jump(p Position) {
	r.top().restore(p.snap)
	r.cur = p.cur
}

// PushFile opens path as a new frame above the current one and scans its
// first token; the caller (the statement interpreter, for `import`) is
// responsible for running it to completion and calling PopFile.
func (r *Reader) PushFile(path string) (source.FileID, error) {
	id, ok := r.files.GetLatest(path)
	if !ok {
		var err error
		if id, err = r.files.Load(path); err != nil {
			return 0, err
		}
	}
	r.stack = append(r.stack, frame{lx: New(r.files.Get(id), r.reporter)})
	r.cur = r.top().Next()
	return id, nil
}

// PopFile closes the topmost frame, releasing it back to whatever file was
// open beneath it. The caller must Jump to a saved Position in that file
// afterward; PopFile alone leaves Token/Text stale.
func (r *Reader) PopFile() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Depth reports how many files are currently open (1 with no import active).
func (r *Reader) Depth() int {
	return len(r.stack)
}
