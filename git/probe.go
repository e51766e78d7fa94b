package git

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Probe = (*Probe)(nil)

// Probe renders the checked-out ref of the repository around the working
// directory.
type Probe struct {
	Resolver promptline.RepoResolver // Defaults to a Resolver
	Dir      func() (string, error)  // Working directory; defaults to os.Getwd
	Color    promptline.Color
}

// NewProbe creates a repository probe that starts from the process working
// directory.
func NewProbe(resolver promptline.RepoResolver, color promptline.Color) *Probe {
	return &Probe{
		Resolver: resolver,
		Dir:      os.Getwd,
		Color:    color,
	}
}

// Name returns "git".
func (p *Probe) Name() string {
	return "git"
}

// Probe returns the ref description, bold in the configured color.
func (p *Probe) Probe(ctx context.Context) (promptline.Text, error) {
	getwd := p.Dir
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		return promptline.Text{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	var resolver promptline.RepoResolver = NewResolver()
	if p.Resolver != nil {
		resolver = p.Resolver
	}
	ref, err := resolver.Resolve(dir)
	if err != nil {
		return promptline.Text{}, fmt.Errorf("failed to resolve repository: %w", err)
	}
	return promptline.Plain(ref.String()).Bold().Foreground(p.Color), nil
}
