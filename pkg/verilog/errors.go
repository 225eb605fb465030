package verilog

import "fmt"

// InputError reports source text that cannot be parsed or compiled
// into a netlist. The underlying parse or semantic error, if any, is
// available via Unwrap.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("verilog: %s: %v", e.Msg, e.Err)
	}
	return "verilog: " + e.Msg
}

func (e *InputError) Unwrap() error { return e.Err }

func inputf(format string, args ...any) *InputError {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}
