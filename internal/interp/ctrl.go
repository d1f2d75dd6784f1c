package interp

// ctrl is the tri-state signal a statement or block execution can produce.
// break/continue are tracked as plain Interpreter fields (breakPending,
// continuePending) inspected directly by the construct that owns the loop,
// mirroring the reference's two process-wide flags. return is different: it
// must unwind every block and loop between the return statement and the
// call that's waiting for it, so it propagates explicitly as a ctrl value
// instead, the way §9's design notes describe.
type ctrl uint8

const (
	ctrlNone ctrl = iota
	ctrlReturn
)
