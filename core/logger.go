package core

// Logger is the app-wide logging contract. Implementations live in
// services/logger.
type Logger interface {
	// Enable turns error reporting to an external service on or off;
	// logging to stdout is always on.
	Enable(enabled bool)
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
