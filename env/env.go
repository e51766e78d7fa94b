// Package env provides prompt probes backed by environment variables and
// operating system lookups.
package env

import (
	"errors"
	"fmt"
	"os"
)

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Probe failures.
var (
	ErrNotInNixShell = errors.New("not in a nix shell")
	ErrNoStatus      = errors.New("no exit status provided")
	ErrStatusOK      = errors.New("last command succeeded")
)

// UnsetError reports a required environment variable that is missing.
type UnsetError struct {
	Key string
}

// Error implements the error interface.
func (e *UnsetError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Key)
}

// lookupOrDefault returns lookup, or os.LookupEnv when lookup is nil.
func lookupOrDefault(lookup LookupFunc) LookupFunc {
	if lookup == nil {
		return os.LookupEnv
	}
	return lookup
}
