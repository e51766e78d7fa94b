// Package git describes repository state by reading git metadata files directly.
package git

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.RepoResolver = (*Resolver)(nil)

const (
	markerName   = ".git"
	gitdirPrefix = "gitdir: "
	refPrefix    = "ref: "
)

// Resolver reads HEAD and ref files under the nearest enclosing .git.
type Resolver struct{}

// NewResolver creates a new resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve walks up from dir to the first directory containing .git, follows
// a "gitdir: " link if .git is a file, and describes HEAD.
func (r *Resolver) Resolve(dir string) (promptline.RepoRef, error) {
	start, err := canonicalize(dir)
	if err != nil {
		return promptline.RepoRef{}, err
	}

	marker, info, err := findMarker(start)
	if err != nil {
		return promptline.RepoRef{}, err
	}

	gitDir := marker
	if !info.IsDir() {
		gitDir, err = followLink(marker)
		if err != nil {
			return promptline.RepoRef{}, err
		}
	}

	head, err := readText(promptline.StepReadHead, filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return promptline.RepoRef{}, err
	}
	if !strings.HasPrefix(head, refPrefix) {
		hash, _ := prefix(strings.TrimSpace(head), promptline.DetachedHeadLen)
		return promptline.RepoRef{Hash: hash, Detached: true}, nil
	}
	ref := strings.TrimSpace(strings.TrimPrefix(head, refPrefix))

	name := path.Base(ref)
	if name == "." || name == ".." || name == "/" {
		return promptline.RepoRef{}, fmt.Errorf("%w: %q", promptline.ErrNoReferenceName, ref)
	}

	id, err := readRef(gitDir, ref)
	if err != nil {
		return promptline.RepoRef{}, err
	}

	hash, truncated := prefix(id, promptline.ShortHashLen)
	return promptline.RepoRef{Name: name, Hash: hash, Truncated: truncated}, nil
}

func canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &promptline.RepoError{Step: promptline.StepCanonicalize, Path: dir, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &promptline.RepoError{Step: promptline.StepCanonicalize, Path: abs, Err: err}
	}
	return resolved, nil
}

// findMarker returns the .git entry of start or of its nearest ancestor. Only
// a missing entry moves the search upward; a symlinked entry is followed.
func findMarker(start string) (string, fs.FileInfo, error) {
	dir := start
	for {
		marker := filepath.Join(dir, markerName)
		info, err := os.Lstat(marker)
		if err == nil && info.Mode()&fs.ModeSymlink != 0 {
			info, err = os.Stat(marker)
			if err != nil {
				return "", nil, &promptline.RepoError{Step: promptline.StepReadMarker, Path: marker, Err: err}
			}
		}
		if err == nil {
			return marker, info, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, &promptline.RepoError{Step: promptline.StepReadMarker, Path: marker, Err: err}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, fmt.Errorf("%w (or any of the parent directories): %s", promptline.ErrNotARepository, start)
		}
		dir = parent
	}
}

// followLink resolves a .git file of the form "gitdir: <path>". Relative
// paths are relative to the directory holding the file.
func followLink(marker string) (string, error) {
	content, err := readText(promptline.StepReadMarker, marker)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(content, gitdirPrefix) {
		return "", fmt.Errorf("%w: %s", promptline.ErrUnexpectedMarkerContent, marker)
	}
	target := strings.TrimSpace(strings.TrimPrefix(content, gitdirPrefix))
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(marker), target)
	}
	return target, nil
}

// readRef returns the object id ref points to. The loose ref file in gitDir
// wins; linked worktrees fall back to their common directory, and packed-refs
// is consulted last.
func readRef(gitDir, ref string) (string, error) {
	content, err := readText(promptline.StepReadRef, filepath.Join(gitDir, filepath.FromSlash(ref)))
	if err == nil {
		return strings.TrimSpace(content), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	common := commonDir(gitDir)
	if common != gitDir {
		c, cerr := readText(promptline.StepReadRef, filepath.Join(common, filepath.FromSlash(ref)))
		if cerr == nil {
			return strings.TrimSpace(c), nil
		}
		if !errors.Is(cerr, fs.ErrNotExist) {
			return "", cerr
		}
	}

	if id, ok := packedRef(common, ref); ok {
		return id, nil
	}
	return "", err
}

// commonDir returns the directory named by gitDir/commondir, or gitDir
// itself when there is none.
func commonDir(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir
	}
	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return gitDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(gitDir, dir)
	}
	return filepath.Clean(dir)
}

// packedRef looks ref up in gitDir/packed-refs.
func packedRef(gitDir, ref string) (string, bool) {
	f, err := os.Open(filepath.Join(gitDir, "packed-refs"))
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		// Header and peeled-tag lines
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "^") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == ref {
			return fields[0], true
		}
	}
	return "", false
}

// readText reads a whole file that must be valid UTF-8.
func readText(step promptline.RepoStep, name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", &promptline.RepoError{Step: step, Path: name, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &promptline.RepoError{Step: step, Path: name, Err: promptline.ErrInvalidUTF8}
	}
	return string(data), nil
}

// prefix returns the first n characters of s and whether anything was cut.
func prefix(s string, n int) (string, bool) {
	r := []rune(s)
	if len(r) <= n {
		return s, false
	}
	return string(r[:n]), true
}
