// Package mock provides test doubles for promptline interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Probe = (*Probe)(nil)

// Probe is a mock implementation of promptline.Probe.
type Probe struct {
	NameFn  func() string
	ProbeFn func(ctx context.Context) (promptline.Text, error)
}

func (p *Probe) Name() string {
	return p.NameFn()
}

func (p *Probe) Probe(ctx context.Context) (promptline.Text, error) {
	return p.ProbeFn(ctx)
}
