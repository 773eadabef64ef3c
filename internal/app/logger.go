package app

// Logger is the minimal logging surface services need. A nil logger is safe;
// log calls become no-ops.
type Logger interface {
	Info(msg string)
	Error(msg string)
}
