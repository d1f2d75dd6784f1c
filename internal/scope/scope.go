// Package scope implements the identifier table the interpreter binds names
// against: a stack of frames, each an insertion-ordered set of identifiers,
// searched innermost-first.
package scope

import (
	"loom/internal/diag"
	"loom/internal/source"
	"loom/internal/value"
)

// Identifier is a declared name. Its Value is nil until bound.
type Identifier struct {
	Name  string
	Value *value.Object
}

type frame struct {
	byName map[string]*Identifier
}

func newFrame() *frame {
	return &frame{byName: make(map[string]*Identifier)}
}

// Table is the scope stack. Frame 0, pushed at construction, is the module
// frame: the pre-scan binds every function name there, so a function is
// callable from any nested frame regardless of where it's defined relative
// to the call site.
type Table struct {
	heap     *value.Heap
	reporter diag.Reporter
	frames   []*frame
}

func New(heap *value.Heap, reporter diag.Reporter) *Table {
	t := &Table{heap: heap, reporter: reporter}
	t.frames = []*frame{newFrame()}
	return t
}

// AppendLevel pushes a new, empty frame. Called only on function call — a
// for-in loop's variable is bound directly in whatever frame already holds
// it (or the current one, if it's new), via Bind/Unbind, not a frame of
// its own.
func (t *Table) AppendLevel() {
	t.frames = append(t.frames, newFrame())
}

// RemoveLevel pops the innermost frame, decref'ing every binding it holds.
func (t *Table) RemoveLevel() {
	top := t.frames[len(t.frames)-1]
	for _, id := range top.byName {
		t.heap.Decref(id.Value)
	}
	t.frames = t.frames[:len(t.frames)-1]
}

func (t *Table) current() *frame {
	return t.frames[len(t.frames)-1]
}

// Add declares name in the current frame. Redeclaration in the same frame
// is a NameError; it does not inspect outer frames, so an inner declaration
// is always free to shadow an outer one.
func (t *Table) Add(name string, span source.Span) *Identifier {
	f := t.current()
	if _, exists := f.byName[name]; exists {
		t.reporter.Fatal(diag.NameError, span, "%s is already declared", name)
	}
	id := &Identifier{Name: name}
	f.byName[name] = id
	return id
}

// Search scans frames innermost-first and returns the first match, or nil.
func (t *Table) Search(name string) *Identifier {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if id, ok := t.frames[i].byName[name]; ok {
			return id
		}
	}
	return nil
}

// MustSearch is Search plus a NameError on miss, for the read/use sites that
// require the identifier to already exist.
func (t *Table) MustSearch(name string, span source.Span) *Identifier {
	id := t.Search(name)
	if id == nil {
		t.reporter.Fatal(diag.NameError, span, "identifier %s undeclared", name)
	}
	return id
}

// SearchOrAdd returns the existing identifier for name, or declares a fresh
// one in the current frame if it doesn't exist anywhere. Used by for-in,
// whose loop variable may be a pre-existing or a brand-new name.
func (t *Table) SearchOrAdd(name string) *Identifier {
	if id := t.Search(name); id != nil {
		return id
	}
	id := &Identifier{Name: name}
	t.current().byName[name] = id
	return id
}

// Bind attaches val to id, decref'ing whatever was previously bound and
// incref'ing val. val may be nil only for a freshly Add'ed identifier that
// has never been bound.
func (t *Table) Bind(id *Identifier, val *value.Object) {
	t.heap.Incref(val)
	t.heap.Decref(id.Value)
	id.Value = val
}

// Unbind detaches and decref's id's current value, used when a for-in loop
// variable goes out of scope without a frame pop (the variable lives in an
// outer frame for the duration of the loop, per the for-in grammar).
func (t *Table) Unbind(id *Identifier) {
	t.heap.Decref(id.Value)
	id.Value = nil
}
