package core

// Logger reports app events to an arbitrary sink.
// expected args fmt: error, map[string]interface{}, access.PrincipalID
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
