package libevents

type nopLogger struct{}

// NewNopLogger returns a Logger that discards every entry. Pass it to
// NewWithLogger to silence the leak warning.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (l nopLogger) WithField(string, any) Logger { return l }

func (nopLogger) Debug(...any)          {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Debugln(...any)        {}
func (nopLogger) Info(...any)           {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Infoln(...any)         {}
func (nopLogger) Warn(...any)           {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Warnln(...any)         {}
func (nopLogger) Error(...any)          {}
func (nopLogger) Errorf(string, ...any) {}
func (nopLogger) Errorln(...any)        {}
