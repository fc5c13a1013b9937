//go:build unit
// +build unit

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger("info")
	require.NotNil(t, log)

	// Should not panic
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")
}

func TestFormatArgs(t *testing.T) {
	require.Equal(t, "", formatArgs())
	require.Equal(t, "hello", formatArgs("hello"))
	require.Equal(t, "booking 42", formatArgs("booking ", 42))
}
