package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errSubloggerConfigIsNil  = errors.New("sublogger config is nil")
	errUnhandledOutputWriter = errors.New("unhandled output writer")
	errSubLoggerNotFound     = errors.New("sub logger not found")
)

func getWriters(s *SubLoggerConfig) (io.Writer, error) {
	if s == nil {
		return nil, errSubloggerConfigIsNil
	}
	mw, err := MultiWriter()
	if err != nil {
		return nil, err
	}
	for _, o := range strings.Split(s.Output, "|") {
		var writer io.Writer
		switch strings.ToLower(strings.TrimSpace(o)) {
		case "stdout", "console":
			writer = os.Stdout
		case "stderr":
			writer = os.Stderr
		case "", "none":
			continue
		default:
			return nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, o)
		}
		if err := mw.Add(writer); err != nil {
			return nil, err
		}
	}
	return mw, nil
}

// GenDefaultSettings return struct with known sane/working logger settings.
// Output is disabled so that library users see nothing unless they opt in.
func GenDefaultSettings() Config {
	return Config{
		SubLoggerConfig: SubLoggerConfig{
			Level:  "INFO|WARN|ERROR",
			Output: "none",
		},
		AdvancedSettings: AdvancedSettings{
			ShowLogSystemName: true,
			Spacer:            spacer,
			TimeStampFormat:   timestampFormat,
			Headers: Headers{
				Info:  "[INFO]",
				Warn:  "[WARN]",
				Debug: "[DEBUG]",
				Error: "[ERROR]",
			},
		},
	}
}

func newLogger(c Config) Logger {
	return Logger{
		ShowLogSystemName: c.AdvancedSettings.ShowLogSystemName,
		TimestampFormat:   c.AdvancedSettings.TimeStampFormat,
		Spacer:            c.AdvancedSettings.Spacer,
		InfoHeader:        c.AdvancedSettings.Headers.Info,
		WarnHeader:        c.AdvancedSettings.Headers.Warn,
		DebugHeader:       c.AdvancedSettings.Headers.Debug,
		ErrorHeader:       c.AdvancedSettings.Headers.Error,
	}
}

// SetupGlobalLogger applies c to every registered sub logger and then applies
// the per sub logger overrides
func SetupGlobalLogger(c Config) error {
	output, err := getWriters(&c.SubLoggerConfig)
	if err != nil {
		return err
	}
	RWM.Lock()
	defer RWM.Unlock()
	logger = newLogger(c)
	for _, sl := range SubLoggers {
		sl.Levels = splitLevel(c.Level)
		sl.output = output
	}
	for x := range c.SubLoggers {
		output, err := getWriters(&c.SubLoggers[x])
		if err != nil {
			return err
		}
		if err := configureSubLogger(c.SubLoggers[x].Name, c.SubLoggers[x].Level, output); err != nil {
			return err
		}
	}
	return nil
}

// SetOutput redirects every sub logger to w with the supplied levels, for
// example "INFO|DEBUG|WARN|ERROR". A nil writer silences all logging.
func SetOutput(w io.Writer, levels string) {
	RWM.Lock()
	defer RWM.Unlock()
	for _, sl := range SubLoggers {
		sl.output = w
		sl.Levels = splitLevel(levels)
	}
}

// must be called with RWM held
func configureSubLogger(subLogger, levels string, output io.Writer) error {
	sl, found := SubLoggers[strings.ToUpper(subLogger)]
	if !found {
		return fmt.Errorf("%w: %v", errSubLoggerNotFound, subLogger)
	}
	sl.output = output
	sl.Levels = splitLevel(levels)
	return nil
}

func splitLevel(level string) (l Levels) {
	for _, lvl := range strings.Split(level, "|") {
		switch strings.ToUpper(strings.TrimSpace(lvl)) {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return
}

// NewSubLogger registers a silent sub logger under name
func NewSubLogger(name string) *SubLogger {
	name = strings.ToUpper(name)
	RWM.Lock()
	defer RWM.Unlock()
	if sl, ok := SubLoggers[name]; ok {
		return sl
	}
	sl := &SubLogger{name: name}
	SubLoggers[name] = sl
	return sl
}

func init() {
	Global = NewSubLogger("LOG")
	ConfigMgr = NewSubLogger("CONFIG")
	RequestSys = NewSubLogger("REQUESTER")
	ExchangeSys = NewSubLogger("EXCHANGE")
}
