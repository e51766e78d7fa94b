package mock

import "github.com/fwojciec/promptline"

// Compile-time interface verification.
var _ promptline.RepoResolver = (*RepoResolver)(nil)

// RepoResolver is a mock implementation of promptline.RepoResolver.
type RepoResolver struct {
	ResolveFn func(dir string) (promptline.RepoRef, error)
}

func (r *RepoResolver) Resolve(dir string) (promptline.RepoRef, error) {
	return r.ResolveFn(dir)
}
