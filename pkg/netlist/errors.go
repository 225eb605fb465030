package netlist

import "fmt"

// StructuralError reports a mutation that would corrupt the netlist:
// a naming collision, a reference to an object that does not exist, or
// a port index outside the cell's declared arity.
type StructuralError struct {
	Op     string     // operation that failed, e.g. "rename-nets"
	Object Identifier // object the operation was applied to
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Object == "" {
		return fmt.Sprintf("netlist: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("netlist: %s %q: %s", e.Op, e.Object, e.Reason)
}

// VerificationError reports the first invariant violation found by
// Verify. Verification is fail-fast: at most one violation is reported
// per run.
type VerificationError struct {
	Object    Identifier
	Invariant string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("netlist: verify %q: %s", e.Object, e.Invariant)
}

func structuralf(op string, object Identifier, format string, args ...any) *StructuralError {
	return &StructuralError{Op: op, Object: object, Reason: fmt.Sprintf(format, args...)}
}
