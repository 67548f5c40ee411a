package libevents

import (
	"reflect"
	"strings"
	"sync/atomic"
)

type (
	// Listener is a callable registered against one or more event names.
	// Emit invokes it synchronously with the arguments given by the caller.
	Listener func(args ...any)

	// registration ties the callable Emit runs to the callable external
	// callers compare against on removal. Both point at the same function for
	// plain registrations; a once-registration stores its auto-removing
	// adapter in invocable while original keeps the user callable, so
	// removing the original also cancels a pending once-listener.
	registration struct {
		original  Listener
		invocable Listener
		ptr       uintptr
		fired     atomic.Bool
	}
)

func newRegistration(fn Listener) *registration {
	return &registration{
		original:  fn,
		invocable: fn,
		ptr:       listenerPtr(fn),
	}
}

// listenerPtr yields the identity listeners are compared by: the function
// code pointer. References to the same declared function or to the same
// stored closure share it; so do distinct closures built from one literal.
func listenerPtr(fn Listener) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// splitNames breaks a whitespace-separated event-name list into single names.
// Empty tokens are dropped, so leading, trailing and repeated separators are
// harmless.
func splitNames(names string) []string {
	return strings.Fields(names)
}
