package log

import "io"

// Global vars related to the logger package
var (
	Global      *SubLogger
	ConfigMgr   *SubLogger
	RequestSys  *SubLogger
	ExchangeSys *SubLogger
)

// SubLogger defines a sub logger. A sub logger without an output writer or
// enabled level drops everything written to it.
type SubLogger struct {
	name string
	Levels
	output io.Writer
}

func (sl *SubLogger) enabled(level string) bool {
	if sl == nil || sl.output == nil {
		return false
	}
	switch level {
	case "info":
		return sl.Info
	case "warn":
		return sl.Warn
	case "debug":
		return sl.Debug
	case "error":
		return sl.Error
	}
	return false
}
