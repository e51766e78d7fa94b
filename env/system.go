package env

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var (
	_ promptline.Probe = (*UserProbe)(nil)
	_ promptline.Probe = (*HostProbe)(nil)
)

// UserProbe renders the current user name.
type UserProbe struct {
	Current func() (*user.User, error) // Defaults to user.Current
	Color   promptline.Color
}

// NewUserProbe creates a user probe.
func NewUserProbe(color promptline.Color) *UserProbe {
	return &UserProbe{Current: user.Current, Color: color}
}

// Name returns "user".
func (p *UserProbe) Name() string {
	return "user"
}

// Probe returns the user name in bold.
func (p *UserProbe) Probe(ctx context.Context) (promptline.Text, error) {
	current := p.Current
	if current == nil {
		current = user.Current
	}
	u, err := current()
	if err != nil {
		return promptline.Text{}, fmt.Errorf("failed to get user: %w", err)
	}
	return promptline.Plain(u.Username).Bold().Foreground(p.Color), nil
}

// HostProbe renders the host name.
type HostProbe struct {
	Hostname func() (string, error) // Defaults to os.Hostname
	Color    promptline.Color
}

// NewHostProbe creates a host probe.
func NewHostProbe(color promptline.Color) *HostProbe {
	return &HostProbe{Hostname: os.Hostname, Color: color}
}

// Name returns "host".
func (p *HostProbe) Name() string {
	return "host"
}

// Probe returns the host name in bold.
func (p *HostProbe) Probe(ctx context.Context) (promptline.Text, error) {
	hostname := p.Hostname
	if hostname == nil {
		hostname = os.Hostname
	}
	host, err := hostname()
	if err != nil {
		return promptline.Text{}, fmt.Errorf("failed to get host: %w", err)
	}
	return promptline.Plain(host).Bold().Foreground(p.Color), nil
}
