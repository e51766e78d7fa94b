package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoShell is returned when the parent process has no name.
var ErrNoShell = errors.New("parent process has no name")

// Detector asks ps for the name of the parent process, which is the shell
// drawing the prompt.
type Detector struct {
	PPID func() int // Defaults to os.Getppid
}

// NewDetector creates a detector for the current process's parent.
func NewDetector() *Detector {
	return &Detector{PPID: os.Getppid}
}

// Detect returns the parent process name, without a login-shell dash or a
// directory.
func (d *Detector) Detect(ctx context.Context) (string, error) {
	ppid := d.PPID
	if ppid == nil {
		ppid = os.Getppid
	}
	pid := strconv.Itoa(ppid())
	cmd := exec.CommandContext(ctx, "ps", "-o", "comm=", "-p", pid)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("ps failed for pid %s: %s", pid, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("ps failed: %w", err)
	}
	return Normalize(string(output))
}

// Normalize turns raw ps output such as "-/bin/zsh\n" into "zsh".
func Normalize(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	name = strings.TrimPrefix(name, "-")
	if name == "" {
		return "", ErrNoShell
	}
	return filepath.Base(name), nil
}
