package libevents

type (
	// Registry is the full method surface of an event registry.
	// EventRegistry is the canonical implementation; NoopRegistry switches
	// eventing off and MockRegistry covers tests of registry consumers.
	Registry interface {
		// AddListener registers fn under each whitespace-separated name in
		// names, appended at the back of the listener list.
		AddListener(names string, fn Listener) error

		// On is an alias for AddListener.
		On(names string, fn Listener) error

		// PrependListener registers fn at the front of each event's listener
		// list.
		PrependListener(names string, fn Listener) error

		// Once registers fn to be detached from every name in names right
		// after its first invocation.
		Once(names string, fn Listener) error

		// PrependOnce registers fn like Once, at the front of the list.
		PrependOnce(names string, fn Listener) error

		// RemoveListener detaches every occurrence of fn from each name in
		// names, emitting EventRemoveListener for each name that changed.
		RemoveListener(names string, fn Listener) error

		// Off is an alias for RemoveListener.
		Off(names string, fn Listener) error

		// RemoveAllListeners drops every listener for one name, emitting
		// nothing.
		RemoveAllListeners(name string)

		// Clear drops every event and every listener.
		Clear()

		// Emit synchronously runs name's listeners in order with args and
		// reports whether any ran.
		Emit(name string, args ...any) bool

		// EventNames returns the live event names in first-registration
		// order.
		EventNames() []string

		// Listeners returns a copy of name's listener list.
		Listeners(name string) []Listener

		// ListenerCount returns the number of listeners on name.
		ListenerCount(name string) int

		// Len returns the number of live event names.
		Len() int

		// MaxListeners returns the leak-warning threshold.
		MaxListeners() float64

		// SetMaxListeners adjusts the leak-warning threshold; zero disables
		// it.
		SetMaxListeners(max float64) error
	}

	// NoopRegistry is an inert Registry: registrations are accepted and
	// dropped, Emit never runs anything. Useful to switch eventing off
	// without touching call sites.
	NoopRegistry struct{}
)

func (NoopRegistry) AddListener(string, Listener) error     { return nil }
func (NoopRegistry) On(string, Listener) error              { return nil }
func (NoopRegistry) PrependListener(string, Listener) error { return nil }
func (NoopRegistry) Once(string, Listener) error            { return nil }
func (NoopRegistry) PrependOnce(string, Listener) error     { return nil }
func (NoopRegistry) RemoveListener(string, Listener) error  { return nil }
func (NoopRegistry) Off(string, Listener) error             { return nil }
func (NoopRegistry) RemoveAllListeners(string)              {}
func (NoopRegistry) Clear()                                 {}
func (NoopRegistry) Emit(string, ...any) bool               { return false }
func (NoopRegistry) EventNames() []string                   { return nil }
func (NoopRegistry) Listeners(string) []Listener            { return nil }
func (NoopRegistry) ListenerCount(string) int               { return 0 }
func (NoopRegistry) Len() int                               { return 0 }
func (NoopRegistry) MaxListeners() float64                  { return DefaultMaxListeners }
func (NoopRegistry) SetMaxListeners(float64) error          { return nil }
