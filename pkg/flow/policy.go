package flow

import (
	"fmt"

	"github.com/andri/pocketpay/internal/logger"
	"go.uber.org/atomic"
)

var (
	strict   = atomic.NewBool(false)
	animated = atomic.NewBool(true)
)

// SetStrict switches lifecycle violations between panicking (development)
// and logging (production).
func SetStrict(enabled bool) {
	strict.Store(enabled)
}

// Strict reports whether lifecycle violations panic.
func Strict() bool {
	return strict.Load()
}

// SetAnimations sets the UI-animation policy used for dismissals.
func SetAnimations(enabled bool) {
	animated.Store(enabled)
}

// Animated reports the current UI-animation policy.
func Animated() bool {
	return animated.Load()
}

// LifecycleError describes a misuse of a flow's lifecycle, such as starting
// it twice. It is only ever raised (as a panic) in strict mode.
type LifecycleError struct {
	Flow  string
	Op    string
	State State
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("flow %q: %s not allowed in state %s", e.Flow, e.Op, e.State)
}

func violation(flowName, op string, state State) {
	err := &LifecycleError{Flow: flowName, Op: op, State: state}
	if Strict() {
		panic(err)
	}
	logger.Warn("flow lifecycle violation", "flow", flowName, "op", op, "state", state.String())
}

// SoftFailure records a missing precondition (torn-down host, released
// delegate). The caller turns the operation into a no-op.
func SoftFailure(op string, args ...any) {
	logger.With("op", op).Warn("flow precondition not met", args...)
}
