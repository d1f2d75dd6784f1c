package diag

import "loom/internal/source"

// Note attaches a secondary span and message to a Diagnostic (e.g. pointing
// back at a function's signature from a wrong-arity call).
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single located, fatal condition.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
