package libevents

// loggingRegistry is a Registry decorator that debug-logs every operation
// before delegating to the wrapped registry.
type loggingRegistry struct {
	inner  Registry
	logger Logger
}

// NewLoggingRegistry decorates inner so that each operation is debug-logged
// through l. Intended for development and troubleshooting of event wiring;
// the wrapped registry's behavior is unchanged.
func NewLoggingRegistry(l Logger, inner Registry) Registry {
	return &loggingRegistry{
		inner:  inner,
		logger: l.WithField("type", "logging_registry"),
	}
}

func (d *loggingRegistry) AddListener(names string, fn Listener) error {
	d.logger.Debugf("add listener on %q", names)
	return d.inner.AddListener(names, fn)
}

func (d *loggingRegistry) On(names string, fn Listener) error {
	d.logger.Debugf("add listener on %q", names)
	return d.inner.On(names, fn)
}

func (d *loggingRegistry) PrependListener(names string, fn Listener) error {
	d.logger.Debugf("prepend listener on %q", names)
	return d.inner.PrependListener(names, fn)
}

func (d *loggingRegistry) Once(names string, fn Listener) error {
	d.logger.Debugf("add once listener on %q", names)
	return d.inner.Once(names, fn)
}

func (d *loggingRegistry) PrependOnce(names string, fn Listener) error {
	d.logger.Debugf("prepend once listener on %q", names)
	return d.inner.PrependOnce(names, fn)
}

func (d *loggingRegistry) RemoveListener(names string, fn Listener) error {
	d.logger.Debugf("remove listener from %q", names)
	return d.inner.RemoveListener(names, fn)
}

func (d *loggingRegistry) Off(names string, fn Listener) error {
	d.logger.Debugf("remove listener from %q", names)
	return d.inner.Off(names, fn)
}

func (d *loggingRegistry) RemoveAllListeners(name string) {
	d.logger.Debugf("remove all listeners from %q", name)
	d.inner.RemoveAllListeners(name)
}

func (d *loggingRegistry) Clear() {
	d.logger.Debug("clear all events")
	d.inner.Clear()
}

func (d *loggingRegistry) Emit(name string, args ...any) bool {
	handled := d.inner.Emit(name, args...)
	d.logger.Debugf("emit %q handled=%t args=%d", name, handled, len(args))
	return handled
}

func (d *loggingRegistry) EventNames() []string {
	return d.inner.EventNames()
}

func (d *loggingRegistry) Listeners(name string) []Listener {
	return d.inner.Listeners(name)
}

func (d *loggingRegistry) ListenerCount(name string) int {
	return d.inner.ListenerCount(name)
}

func (d *loggingRegistry) Len() int {
	return d.inner.Len()
}

func (d *loggingRegistry) MaxListeners() float64 {
	return d.inner.MaxListeners()
}

func (d *loggingRegistry) SetMaxListeners(max float64) error {
	if err := d.inner.SetMaxListeners(max); err != nil {
		d.logger.Warnf("set max listeners to %v rejected: %s", max, err)
		return err
	}
	d.logger.Debugf("set max listeners to %v", max)
	return nil
}
