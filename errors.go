package libevents

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNilListener           = errors.New("listener is nil")
	ErrMaxListenersNotFinite = errors.New("max listeners must be a finite number")
	ErrMaxListenersNegative  = errors.New("max listeners must not be negative")
)

// ErrInvalidMaxListeners reports a SetMaxListeners value that was refused,
// together with the reason. The previous threshold stays in effect.
type ErrInvalidMaxListeners struct {
	err   error
	value float64
}

func (e ErrInvalidMaxListeners) Error() string {
	return fmt.Sprintf("invalid max listeners %v: %s", e.value, e.err)
}

func (e ErrInvalidMaxListeners) Unwrap() error { return e.err }

func wrapErrInvalidMaxListeners(err error, value float64) *ErrInvalidMaxListeners {
	return &ErrInvalidMaxListeners{
		err:   err,
		value: value,
	}
}
