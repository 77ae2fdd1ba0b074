package tes3

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithCodepage(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil)).WithCodepage(Windows1250)
	l.Info("hello")
	assert.Contains(t, buf.String(), "codepage=windows-1250")
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.orNoop().Error("dropped") })
	assert.NotNil(t, NoopLogger())
}
