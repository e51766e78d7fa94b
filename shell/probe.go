package shell

import (
	"context"
	"fmt"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Probe = (*Probe)(nil)

// Probe renders the name of the shell drawing the prompt.
type Probe struct {
	Detect func(ctx context.Context) (string, error) // Defaults to Detector.Detect
	Color  promptline.Color
}

// NewProbe creates a shell probe backed by a Detector.
func NewProbe(color promptline.Color) *Probe {
	return &Probe{Detect: NewDetector().Detect, Color: color}
}

// Name returns "shell".
func (p *Probe) Name() string {
	return "shell"
}

// Probe returns the shell name in bold.
func (p *Probe) Probe(ctx context.Context) (promptline.Text, error) {
	detect := p.Detect
	if detect == nil {
		detect = NewDetector().Detect
	}
	name, err := detect(ctx)
	if err != nil {
		return promptline.Text{}, fmt.Errorf("failed to get shell: %w", err)
	}
	return promptline.Plain(name).Bold().Foreground(p.Color), nil
}
