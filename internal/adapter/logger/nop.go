package logger

type nopLogger struct{}

// Nop returns a logger that discards everything, for tests.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(action, message, requestID string, details map[string]interface{})  {}
func (nopLogger) Debug(action, message, requestID string, details map[string]interface{}) {}
func (nopLogger) Warn(action, message, requestID string, details map[string]interface{})  {}
func (nopLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
}
