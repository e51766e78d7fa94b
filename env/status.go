package env

import (
	"context"
	"strings"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Probe = (*StatusProbe)(nil)

// StatusProbe renders the exit status of the previous command when it
// failed.
type StatusProbe struct {
	Status string
	Color  promptline.Color
}

// NewStatusProbe creates a status probe for the given raw exit status.
func NewStatusProbe(status string, color promptline.Color) *StatusProbe {
	return &StatusProbe{Status: status, Color: color}
}

// Name returns "status".
func (p *StatusProbe) Name() string {
	return "status"
}

// Probe returns the status in bold. A zero status yields ErrStatusOK so the
// segment is omitted.
func (p *StatusProbe) Probe(ctx context.Context) (promptline.Text, error) {
	status := strings.TrimSpace(p.Status)
	switch status {
	case "":
		return promptline.Text{}, ErrNoStatus
	case "0":
		return promptline.Text{}, ErrStatusOK
	}
	return promptline.Plain(status).Bold().Foreground(p.Color), nil
}
