package logger

import (
	"errors"
	"testing"
)

// Every level helper takes structured fields the same way; a panic or
// signature drift here breaks all call sites at once.
func TestLevelHelpers(t *testing.T) {
	Init("test")

	fields := map[string]interface{}{"key": "value", "count": 3}

	Info("info message", fields)
	Debug("debug message", fields)
	Warn("warn message", fields)
	Error("error message", errors.New("boom"))

	Info("no fields", nil)
	Debug("no fields", nil)
	Warn("no fields", nil)
}
