package logger

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() Interface {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (n nopLogger) With(args ...any) Interface                    { return n }
func (n nopLogger) Named(name string) Interface                   { return n }
