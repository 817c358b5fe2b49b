package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, INFO, "test")

	tests := []struct {
		name     string
		logFunc  func(format string, args ...interface{})
		message  string
		wantLog  bool
		contains string
	}{
		{name: "Debug message below INFO level", logFunc: l.Debug, message: "debug message", wantLog: false},
		{name: "Info message at INFO level", logFunc: l.Info, message: "info message", wantLog: true, contains: "[INFO]"},
		{name: "Warning message above INFO level", logFunc: l.Warn, message: "warning message", wantLog: true, contains: "[WARN]"},
		{name: "Error message above INFO level", logFunc: l.Error, message: "error message", wantLog: true, contains: "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(tt.message)

			output := buf.String()
			if tt.wantLog {
				assert.Contains(t, output, tt.contains, "log should contain level marker")
				assert.Contains(t, output, tt.message, "log should contain message")
				assert.Contains(t, output, "[test]", "log should contain component")
			} else {
				assert.Empty(t, output, "log should be empty")
			}
		})
	}
}

func TestLoggerWithComponentSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, INFO, "parent")
	child := parent.WithComponent("relay")

	parent.SetLevel(DEBUG)
	child.Debug("chunk %d", 3)

	assert.Equal(t, "relay", child.component)
	assert.Contains(t, buf.String(), "[DEBUG][relay] chunk 3")
}

func TestLoggerWithError(t *testing.T) {
	err := assert.AnError
	l := GetLogger().WithError(err)
	assert.True(t, strings.Contains(l.component, err.Error()))
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want LogLevel
	}{
		{in: "debug", want: DEBUG},
		{in: "INFO", want: INFO},
		{in: " warn ", want: WARN},
		{in: "warning", want: WARN},
		{in: "Error", want: ERROR},
		{in: "fatal", want: FATAL},
	}
	for _, tc := range testCases {
		level, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, level, tc.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogLevelNames(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "LEVEL(42)", LogLevel(42).String())
}

func TestInitLoggerSingleton(t *testing.T) {
	for i := 0; i < 3; i++ {
		InitLogger(DEBUG, "test")
	}

	logger1 := GetLogger()
	logger2 := GetLogger()
	assert.Same(t, logger1, logger2, "GetLogger should return the same instance")
}
