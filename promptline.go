// Package promptline provides domain types for rendering a shell prompt line.
package promptline

import (
	"context"
	"errors"
	"fmt"
)

// Probe produces one segment of the prompt. A failing probe is skipped
// without affecting the others.
type Probe interface {
	// Name identifies the probe in diagnostics.
	Name() string
	// Probe returns the styled segment text.
	Probe(ctx context.Context) (Text, error)
}

// RepoResolver describes the version-control state around a directory.
type RepoResolver interface {
	// Resolve finds the repository enclosing dir and describes its HEAD.
	Resolve(dir string) (RepoRef, error)
}

// Short display lengths for object ids.
const (
	ShortHashLen    = 5
	DetachedHeadLen = 14
)

// TruncationMarker is appended to a short hash that abbreviates a longer id.
const TruncationMarker = ".."

// RepoRef describes what a repository has checked out.
type RepoRef struct {
	Name      string // Final component of the symbolic ref, e.g. "main"; empty if Detached
	Hash      string // Short hash, or the HEAD prefix if Detached
	Truncated bool   // True if Hash abbreviates a longer id
	Detached  bool   // True if HEAD holds an object id instead of a ref
}

// String returns "main abcd1.." for symbolic refs and the raw HEAD prefix
// for detached heads.
func (r RepoRef) String() string {
	if r.Detached {
		return r.Hash
	}
	s := r.Name + " " + r.Hash
	if r.Truncated {
		s += TruncationMarker
	}
	return s
}

// Repository resolution failures that carry no I/O cause.
var (
	ErrNotARepository          = errors.New("not a git repository")
	ErrUnexpectedMarkerContent = errors.New("unexpected .git file content")
	ErrNoReferenceName         = errors.New("reference has no name")
	ErrInvalidUTF8             = errors.New("invalid UTF-8")
)

// RepoStep identifies which read of repository resolution failed.
type RepoStep string

// Resolution steps.
const (
	StepCanonicalize RepoStep = "canonicalize"
	StepReadMarker   RepoStep = "read_marker"
	StepReadHead     RepoStep = "read_head"
	StepReadRef      RepoStep = "read_ref"
)

// RepoError is a failed repository read. Err is the underlying cause.
type RepoError struct {
	Step RepoStep
	Path string
	Err  error
}

// Error implements the error interface.
func (e *RepoError) Error() string {
	switch e.Step {
	case StepCanonicalize:
		return fmt.Sprintf("failed to canonicalize %s: %v", e.Path, e.Err)
	case StepReadMarker:
		return fmt.Sprintf("failed to read git link %s: %v", e.Path, e.Err)
	case StepReadHead:
		return fmt.Sprintf("failed to read HEAD %s: %v", e.Path, e.Err)
	case StepReadRef:
		return fmt.Sprintf("failed to read ref %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *RepoError) Unwrap() error {
	return e.Err
}

// Causes returns the messages of err and of every error it wraps, outermost
// first. Joined errors contribute each of their branches in order.
func Causes(err error) []string {
	var causes []string
	for err != nil {
		causes = append(causes, err.Error())
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				causes = append(causes, Causes(e)...)
			}
			err = nil
		default:
			err = nil
		}
	}
	return causes
}

// Palette assigns a color to each prompt segment.
type Palette struct {
	User    Color
	Host    Color
	Shell   Color
	Dir     Color
	Repo    Color
	Sandbox Color
	Status  Color
}

// Theme provides the palette for a prompt.
// Different implementations can provide terminal-native or true-color variants.
type Theme interface {
	Palette() Palette
}
