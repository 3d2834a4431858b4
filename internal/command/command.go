// Package command is a placeholder for browser automation. Commands are
// validated against a fixed whitelist and acknowledged without being executed;
// real automation lives in a future extension-side engine.
package command

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Supported lists the command names the API accepts.
var Supported = []string{
	"scroll",
	"click",
	"navigate",
	"extract",
	"screenshot",
}

// Result describes one acknowledged command.
type Result struct {
	ExecutionID string
	Message     string
}

// Valid reports whether cmd is on the whitelist.
func Valid(cmd string) bool {
	for _, c := range Supported {
		if c == cmd {
			return true
		}
	}
	return false
}

// Execute acknowledges a whitelisted command. Unknown commands return an
// error naming the supported set.
func Execute(cmd string, params map[string]any) (Result, error) {
	if !Valid(cmd) {
		return Result{}, fmt.Errorf("unknown command: %s. Supported commands: %s", cmd, strings.Join(Supported, ", "))
	}
	return Result{
		ExecutionID: uuid.NewString(),
		Message:     fmt.Sprintf("[Placeholder] Command '%s' - Browser automation not yet implemented", cmd),
	}, nil
}
