package machine

import "fmt"

// StartupError wraps a fatal condition discovered before the tick loop
// ever runs (spec.md §7): a missing file, a malformed ROM, or an
// unimplemented controller. The machine driver aggregates every startup
// check it can still run via hashicorp/go-multierror before giving up, so
// a user fixing one problem at a time doesn't have to re-run to discover
// the next.
type StartupError struct {
	Reason string
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup: %s", e.Reason)
}

// ExecutionError wraps the CPU reporting an illegal or unimplemented
// opcode mid-run (spec.md §7). Unlike a StartupError, this always
// terminates a loop that was already running.
type ExecutionError struct {
	Cause error
	Clock uint64
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed after %d ticks: %v", e.Clock, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}
