package libevents

import (
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"
)

const (
	// DefaultMaxListeners is the per-event listener count at which a registry
	// warns about a possible leak. SetMaxListeners adjusts it per instance;
	// zero disables the warning entirely.
	DefaultMaxListeners = 10

	// EventRemoveListener is emitted by the registry itself right after
	// RemoveListener detaches a listener. Its listeners receive the event
	// name and the removed listener as arguments.
	EventRemoveListener = "removeListener"
)

// EventRegistry maps event names to ordered listener lists and runs them
// synchronously on Emit. It is the canonical Registry implementation; create
// instances through New or NewWithLogger, the zero value is not usable.
//
// Every method is safe for concurrent use. The internal lock is never held
// while listeners run, so listeners may add, remove and emit on the same
// registry from inside an emission.
type EventRegistry struct {
	listeners    map[string][]*registration
	order        []string
	maxListeners float64
	logger       Logger
	lock         sync.RWMutex
}

// New creates an EventRegistry that reports diagnostics to stderr.
func New() *EventRegistry {
	return NewWithLogger(NewWriterLogger(os.Stderr))
}

// NewWithLogger creates an EventRegistry that reports diagnostics through l.
// Pass NewNopLogger() to suppress them.
func NewWithLogger(l Logger) *EventRegistry {
	return &EventRegistry{
		listeners:    make(map[string][]*registration),
		maxListeners: DefaultMaxListeners,
		logger:       l.WithField("component", "event_registry"),
	}
}

// AddListener registers fn to run whenever one of the whitespace-separated
// event names in names is emitted. Listeners run in registration order, and
// registering the same listener again adds another occurrence.
//
// When a name already holds MaxListeners listeners the registry logs a leak
// warning; the registration itself always proceeds.
func (r *EventRegistry) AddListener(names string, fn Listener) error {
	return r.add(names, fn, false)
}

// On is an alias for AddListener.
func (r *EventRegistry) On(names string, fn Listener) error {
	return r.add(names, fn, false)
}

// PrependListener registers fn like AddListener but inserts it at the front
// of each event's listener list instead of appending it.
func (r *EventRegistry) PrependListener(names string, fn Listener) error {
	return r.add(names, fn, true)
}

func (r *EventRegistry) add(names string, fn Listener, prepend bool) error {
	if fn == nil {
		return errors.Wrap(ErrNilListener, "add listener")
	}

	rec := newRegistration(fn)
	for _, name := range splitNames(names) {
		r.insert(name, rec, prepend)
	}
	return nil
}

// Once registers fn like AddListener, except that the registration is
// detached from every name in names right after its first invocation; later
// emits no longer see it. Removing fn before it fires cancels it as well.
func (r *EventRegistry) Once(names string, fn Listener) error {
	return r.addOnce(names, fn, false)
}

// PrependOnce registers fn like Once but at the front of each event's
// listener list.
func (r *EventRegistry) PrependOnce(names string, fn Listener) error {
	return r.addOnce(names, fn, true)
}

func (r *EventRegistry) addOnce(names string, fn Listener, prepend bool) error {
	if fn == nil {
		return errors.Wrap(ErrNilListener, "add once listener")
	}

	rec := newRegistration(fn)
	rec.invocable = func(args ...any) {
		// A snapshot taken by a reentrant emit may still hold this record
		// after it fired; the swap keeps the callable at one invocation.
		if !rec.fired.CompareAndSwap(false, true) {
			return
		}
		defer r.removeRegistration(names, rec)
		fn(args...)
	}
	for _, name := range splitNames(names) {
		r.insert(name, rec, prepend)
	}
	return nil
}

// RemoveListener detaches every occurrence of fn from each of the
// whitespace-separated event names in names. Identity is the function code
// pointer: references to the same declared function or to the same stored
// closure match, while distinct closures built from one literal are
// indistinguishable. Once-registrations match through the callable they were
// registered with.
//
// After each name whose list changed, the registry synchronously emits
// EventRemoveListener with the event name and fn. Names without listeners and
// listeners that were never registered are ignored.
func (r *EventRegistry) RemoveListener(names string, fn Listener) error {
	if fn == nil {
		return errors.Wrap(ErrNilListener, "remove listener")
	}

	ptr := listenerPtr(fn)
	for _, name := range splitNames(names) {
		if r.detach(name, func(rec *registration) bool { return rec.ptr == ptr }) {
			r.Emit(EventRemoveListener, name, fn)
		}
	}
	return nil
}

// Off is an alias for RemoveListener.
func (r *EventRegistry) Off(names string, fn Listener) error {
	return r.RemoveListener(names, fn)
}

// removeRegistration detaches one exact record from every name in names,
// emitting EventRemoveListener for each name it was still attached to.
func (r *EventRegistry) removeRegistration(names string, rec *registration) {
	for _, name := range splitNames(names) {
		if r.detach(name, func(candidate *registration) bool { return candidate == rec }) {
			r.Emit(EventRemoveListener, name, rec.original)
		}
	}
}

// RemoveAllListeners drops every listener registered for name at once.
// Unlike RemoveListener it emits nothing. Unknown names are ignored.
func (r *EventRegistry) RemoveAllListeners(name string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.listeners[name]; exists {
		r.deleteEntry(name)
	}
}

// Clear drops every event and every listener, returning the registry to its
// initial empty state. Like RemoveAllListeners it emits nothing.
func (r *EventRegistry) Clear() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.listeners = make(map[string][]*registration)
	r.order = nil
}

// Emit synchronously invokes every listener registered for name, in order,
// passing args through unchanged. It reports whether at least one listener
// was invoked.
//
// The listener list is snapshotted before the first invocation, so listeners
// added or removed while the emission runs do not change the set this call
// invokes. The registry does not recover panics: a panicking listener skips
// the rest of the snapshot and the panic reaches Emit's caller.
func (r *EventRegistry) Emit(name string, args ...any) bool {
	r.lock.RLock()
	regs := r.listeners[name]
	snapshot := make([]*registration, len(regs))
	copy(snapshot, regs)
	r.lock.RUnlock()

	if len(snapshot) == 0 {
		return false
	}

	for _, rec := range snapshot {
		rec.invocable(args...)
	}
	return true
}

// EventNames returns the names currently holding at least one listener, in
// the order they first gained one. A name emptied and registered again moves
// to the end.
func (r *EventRegistry) EventNames() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Listeners returns a copy of name's current listener list. Entries
// registered through Once appear as the callable they were registered with,
// not as the internal adapter. Mutating the returned slice does not affect
// the registry.
func (r *EventRegistry) Listeners(name string) []Listener {
	r.lock.RLock()
	defer r.lock.RUnlock()

	regs := r.listeners[name]
	out := make([]Listener, 0, len(regs))
	for _, rec := range regs {
		out = append(out, rec.original)
	}
	return out
}

// ListenerCount returns how many listeners name currently holds.
func (r *EventRegistry) ListenerCount(name string) int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.listeners[name])
}

// Len returns the number of event names currently holding listeners.
func (r *EventRegistry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.listeners)
}

// MaxListeners returns the per-event leak-warning threshold. The default is
// DefaultMaxListeners; after SetMaxListeners(0) it is positive infinity.
func (r *EventRegistry) MaxListeners() float64 {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.maxListeners
}

// SetMaxListeners adjusts the leak-warning threshold. Zero disables the
// warning by storing positive infinity. NaN and infinite values are rejected
// with ErrMaxListenersNotFinite, negative ones with ErrMaxListenersNegative;
// on error the previous threshold stays in effect.
func (r *EventRegistry) SetMaxListeners(max float64) error {
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return wrapErrInvalidMaxListeners(ErrMaxListenersNotFinite, max)
	}
	if max < 0 {
		return wrapErrInvalidMaxListeners(ErrMaxListenersNegative, max)
	}
	if max == 0 {
		max = math.Inf(1)
	}

	r.lock.Lock()
	r.maxListeners = max
	r.lock.Unlock()
	return nil
}

// insert appends or prepends rec under name, creating the entry when absent.
// The leak check runs against the count before the insert so the warning
// fires once per name, when the threshold is first reached.
func (r *EventRegistry) insert(name string, rec *registration, prepend bool) {
	r.lock.Lock()
	regs, exists := r.listeners[name]
	warn := float64(len(regs)) == r.maxListeners
	max := r.maxListeners
	if !exists {
		r.order = append(r.order, name)
	}
	if prepend {
		r.listeners[name] = append([]*registration{rec}, regs...)
	} else {
		r.listeners[name] = append(regs, rec)
	}
	count := len(r.listeners[name])
	r.lock.Unlock()

	if warn {
		r.logger.Warnf(
			"possible listener leak on event %q: %d listeners registered, threshold is %v; raise it with SetMaxListeners",
			name, count, max,
		)
	}
}

// detach rebuilds name's listener list without the records match accepts,
// deleting the whole entry when it empties. It reports whether anything was
// removed. Callers emit EventRemoveListener themselves, after the lock is
// released.
func (r *EventRegistry) detach(name string, match func(*registration) bool) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	regs, exists := r.listeners[name]
	if !exists {
		return false
	}

	kept := make([]*registration, 0, len(regs))
	for _, rec := range regs {
		if !match(rec) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(regs) {
		return false
	}
	if len(kept) == 0 {
		r.deleteEntry(name)
		return true
	}
	r.listeners[name] = kept
	return true
}

// deleteEntry removes name from the map and from the insertion-order list.
// Callers must hold the write lock.
func (r *EventRegistry) deleteEntry(name string) {
	delete(r.listeners, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
