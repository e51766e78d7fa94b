package env

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Probe = (*NixProbe)(nil)

// NixShellKind is the flavor of nix shell the prompt runs in.
type NixShellKind string

// Nix shell kinds. Unknown covers `nix shell`, which sets no IN_NIX_SHELL.
const (
	NixPure    NixShellKind = "pure"
	NixImpure  NixShellKind = "impure"
	NixUnknown NixShellKind = "unknown"
)

const nixStore = "/nix/store"

// DetectNixShell reports the nix shell kind from IN_NIX_SHELL, falling back
// to looking for a /nix/store entry on PATH.
func DetectNixShell(lookup LookupFunc) (NixShellKind, error) {
	lookup = lookupOrDefault(lookup)
	if v, ok := lookup("IN_NIX_SHELL"); ok {
		switch v {
		case "pure":
			return NixPure, nil
		case "impure":
			return NixImpure, nil
		default:
			return NixUnknown, nil
		}
	}

	path, ok := lookup("PATH")
	if !ok {
		return "", ErrNotInNixShell
	}
	for _, p := range filepath.SplitList(path) {
		if p == nixStore || strings.HasPrefix(p, nixStore+"/") {
			return NixUnknown, nil
		}
	}
	return "", ErrNotInNixShell
}

// NixProbe renders "nix: <kind>" inside a nix shell.
type NixProbe struct {
	Lookup LookupFunc
	Color  promptline.Color
}

// NewNixProbe creates a nix shell probe reading the process environment.
func NewNixProbe(color promptline.Color) *NixProbe {
	return &NixProbe{Color: color}
}

// Name returns "nix".
func (p *NixProbe) Name() string {
	return "nix"
}

// Probe returns the nix shell kind in bold, or ErrNotInNixShell.
func (p *NixProbe) Probe(ctx context.Context) (promptline.Text, error) {
	kind, err := DetectNixShell(p.Lookup)
	if err != nil {
		return promptline.Text{}, err
	}
	return promptline.Plain("nix: " + string(kind)).Bold().Foreground(p.Color), nil
}
