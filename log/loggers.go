package log

import (
	"fmt"
	"strings"
	"time"
)

// Infof takes a pointer subLogger struct, string and interface formats and
// writes them to the sub logger output
func Infof(sl *SubLogger, data string, v ...any) {
	stagef(sl, "info", data, v...)
}

// Debugf takes a pointer subLogger struct, string and interface formats and
// writes them to the sub logger output
func Debugf(sl *SubLogger, data string, v ...any) {
	stagef(sl, "debug", data, v...)
}

// Warnf takes a pointer subLogger struct, string and interface formats and
// writes them to the sub logger output
func Warnf(sl *SubLogger, data string, v ...any) {
	stagef(sl, "warn", data, v...)
}

// Errorf takes a pointer subLogger struct, string and interface formats and
// writes them to the sub logger output
func Errorf(sl *SubLogger, data string, v ...any) {
	stagef(sl, "error", data, v...)
}

// Errorln takes a pointer subLogger struct and interface and writes them to
// the sub logger output
func Errorln(sl *SubLogger, v ...any) {
	RWM.RLock()
	defer RWM.RUnlock()
	if !sl.enabled("error") {
		return
	}
	write(sl, "error", strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func stagef(sl *SubLogger, level, data string, v ...any) {
	RWM.RLock()
	defer RWM.RUnlock()
	if !sl.enabled(level) {
		return
	}
	write(sl, level, fmt.Sprintf(data, v...))
}

// write must be called with RWM held
func write(sl *SubLogger, level, msg string) {
	var b strings.Builder
	b.WriteString(logger.header(level))
	b.WriteString(time.Now().Format(logger.TimestampFormat))
	if logger.ShowLogSystemName {
		b.WriteString(sl.name)
		b.WriteString(logger.Spacer)
	} else {
		b.WriteString(strings.TrimLeft(logger.Spacer, " "))
	}
	b.WriteString(msg)
	b.WriteByte('\n')
	_, _ = sl.output.Write([]byte(b.String()))
}

func (l *Logger) header(level string) string {
	switch level {
	case "info":
		return l.InfoHeader
	case "warn":
		return l.WarnHeader
	case "debug":
		return l.DebugHeader
	default:
		return l.ErrorHeader
	}
}
