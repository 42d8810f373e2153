package log

import (
	"io"
	"sync"
)

const (
	timestampFormat = " 02/01/2006 15:04:05 "
	spacer          = " | "
)

var (
	logger = newLogger(GenDefaultSettings())

	// SubLoggers holds every registered sub logger keyed by upper case name
	SubLoggers = map[string]*SubLogger{}

	// RWM guards logger and SubLoggers
	RWM = &sync.RWMutex{}
)

// Config holds configuration settings for the logger
type Config struct {
	SubLoggerConfig
	AdvancedSettings AdvancedSettings  `json:"advancedSettings"`
	SubLoggers       []SubLoggerConfig `json:"subloggers,omitempty"`
}

// AdvancedSettings holds the formatting options
type AdvancedSettings struct {
	ShowLogSystemName bool    `json:"showLogSystemName"`
	Spacer            string  `json:"spacer"`
	TimeStampFormat   string  `json:"timeStampFormat"`
	Headers           Headers `json:"headers"`
}

// Headers defines the per level prefixes
type Headers struct {
	Info  string `json:"info"`
	Warn  string `json:"warn"`
	Debug string `json:"debug"`
	Error string `json:"error"`
}

// SubLoggerConfig holds sub logger configuration settings
type SubLoggerConfig struct {
	Name   string `json:"name,omitempty"`
	Level  string `json:"level"`
	Output string `json:"output"`
}

// Logger each instance of logger settings
type Logger struct {
	ShowLogSystemName                                bool
	TimestampFormat                                  string
	InfoHeader, ErrorHeader, DebugHeader, WarnHeader string
	Spacer                                           string
}

// Levels flags for each sub logger type
type Levels struct {
	Info, Debug, Warn, Error bool
}

type multiWriter struct {
	writers []io.Writer
	mu      sync.RWMutex
}
