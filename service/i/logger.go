package i

// Logger is the leveled logger services and controllers write to.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
