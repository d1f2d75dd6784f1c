package interp

import (
	"loom/internal/diag"
	"loom/internal/token"
	"loom/internal/value"
)

// importStmt implements §4.5.13. Each path expression names a file whose
// function definitions are registered into the shared module frame —
// exactly the def-only pre-scan the entry file itself gets before
// execution begins. An imported file's top-level statements never run;
// the reader returns to the position it held right before the push the
// moment the scan finishes, the same shape as the reference's
// import_stmt(), which pushes, imports, and jumps back with no statement
// loop of its own in between.
func (in *Interpreter) importStmt() {
	for {
		pathObj := in.evalAssignment()
		path := in.asPath(pathObj)
		in.heap.Decref(pathObj)

		returnTo := in.reader.Save()
		if _, err := in.reader.PushFile(path); err != nil {
			in.fatal(diag.SystemError, "%s", err.Error())
		}
		in.prescanFile()
		in.reader.PopFile()
		in.reader.Jump(returnTo)

		if !in.accept(token.Comma) {
			break
		}
	}
	in.expect(token.NEWLINE)
}

// asPath converts an evaluated path expression to a string the same way
// assignment and mixed-type concatenation do, via the canonical textual
// form, rather than requiring the expression to already be a string.
func (in *Interpreter) asPath(obj *value.Object) string {
	strObj := value.ToStrObj(in.heap, obj)
	path := strObj.StrVal
	in.heap.Decref(strObj)
	return path
}

// prescanFile registers every `def` in the file currently on top of the
// reader's stack, the same way the entry-file prescan does, stopping at
// that file's own ENDMARKER.
func (in *Interpreter) prescanFile() {
	for in.reader.Kind() != token.ENDMARKER {
		if in.reader.Kind() == token.KwDef {
			in.reader.Next()
			in.prescanFunction()
			continue
		}
		in.reader.Next()
	}
}
