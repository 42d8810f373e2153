package log

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilentByDefault(t *testing.T) {
	sl := &SubLogger{name: "SILENT"}
	assert.False(t, sl.enabled("error"))
	var nilLogger *SubLogger
	assert.False(t, nilLogger.enabled("error"))
	Errorf(nilLogger, "must not panic %d", 1)
}

func TestSubLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	sl := &SubLogger{name: "TEST", output: &buf, Levels: splitLevel("INFO|ERROR")}
	Infof(sl, "hello %s", "world")
	Debugf(sl, "hidden")
	Errorln(sl, "boom", 42)
	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "TEST")
	assert.Contains(t, out, "boom 42")
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestSetupGlobalLogger(t *testing.T) {
	c := GenDefaultSettings()
	c.Output = "bogus"
	assert.ErrorIs(t, SetupGlobalLogger(c), errUnhandledOutputWriter)

	c = GenDefaultSettings()
	c.SubLoggers = []SubLoggerConfig{{Name: "missing", Level: "DEBUG", Output: "stdout"}}
	assert.ErrorIs(t, SetupGlobalLogger(c), errSubLoggerNotFound)

	require.NoError(t, SetupGlobalLogger(GenDefaultSettings()))
	var buf bytes.Buffer
	SetOutput(&buf, "DEBUG")
	Debugf(RequestSys, "request %d", 7)
	assert.Contains(t, buf.String(), "REQUESTER")
	assert.Contains(t, buf.String(), "request 7")
	SetOutput(nil, "")
	Debugf(RequestSys, "dropped")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestSplitLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Levels{Info: true, Debug: true, Warn: true, Error: true}, splitLevel("INFO|DEBUG|WARN|ERROR"))
	assert.Equal(t, Levels{Warn: true}, splitLevel("warn"))
	assert.Equal(t, Levels{}, splitLevel(""))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("nope") }

func TestMultiWriter(t *testing.T) {
	t.Parallel()
	var a, b bytes.Buffer
	mw, err := MultiWriter(&a, &b)
	require.NoError(t, err)
	assert.ErrorIs(t, mw.Add(&a), errWriterAlreadyLoaded)

	n, err := mw.Write([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "data", a.String())
	assert.Equal(t, "data", b.String())

	require.NoError(t, mw.Remove(&b))
	assert.ErrorIs(t, mw.Remove(&b), errWriterNotFound)

	require.NoError(t, mw.Add(errWriter{}))
	_, err = mw.Write([]byte("x"))
	assert.Error(t, err)

	_, err = MultiWriter(io.Discard, io.Discard)
	assert.ErrorIs(t, err, errWriterAlreadyLoaded)
}
