package env

import (
	"context"
	"strings"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Probe = (*DirProbe)(nil)

// DirProbe renders $PWD with $HOME abbreviated to "~".
type DirProbe struct {
	Lookup LookupFunc
	Color  promptline.Color
}

// NewDirProbe creates a working directory probe reading the process
// environment.
func NewDirProbe(color promptline.Color) *DirProbe {
	return &DirProbe{Color: color}
}

// Name returns "dir".
func (p *DirProbe) Name() string {
	return "dir"
}

// Probe returns the abbreviated working directory in bold.
func (p *DirProbe) Probe(ctx context.Context) (promptline.Text, error) {
	lookup := lookupOrDefault(p.Lookup)
	pwd, ok := lookup("PWD")
	if !ok {
		return promptline.Text{}, &UnsetError{Key: "PWD"}
	}
	home, _ := lookup("HOME")
	return promptline.Plain(Abbreviate(pwd, home)).Bold().Foreground(p.Color), nil
}

// Abbreviate replaces a leading home directory in dir with "~". Only whole
// path components match: with home "/home/u", "/home/user" is unchanged.
func Abbreviate(dir, home string) string {
	home = strings.TrimSuffix(home, "/")
	if home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(dir, home+"/"); ok {
		return "~/" + rest
	}
	return dir
}
