package logger

// noOpLogger discards everything (tests, and components whose logging is opt-in)
type noOpLogger struct{}

// NewNoOp creates a logger that does nothing
func NewNoOp() Logger {
	return noOpLogger{}
}

func (noOpLogger) Debug(msg string, fields ...Field) {}
func (noOpLogger) Info(msg string, fields ...Field)  {}
func (noOpLogger) Warn(msg string, fields ...Field)  {}
func (noOpLogger) Error(msg string, fields ...Field) {}
