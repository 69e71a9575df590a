package vector

import "sync"

// Handle is a process-scoped, lazily loaded reference to a Store. The first
// Store call performs the load; concurrent first callers block on that same
// load. A failed load is terminal: every later call returns the original
// error without retrying, and callers are expected to degrade to
// keyword-only search.
type Handle struct {
	indexPath  string
	vectorPath string

	once  sync.Once
	store *Store
	err   error
}

// NewHandle returns an unloaded Handle for the given file pair.
func NewHandle(indexPath, vectorPath string) *Handle {
	return &Handle{indexPath: indexPath, vectorPath: vectorPath}
}

// Store returns the loaded store, loading it on first use.
func (h *Handle) Store() (*Store, error) {
	h.once.Do(func() {
		h.store, h.err = LoadFiles(h.indexPath, h.vectorPath)
	})
	return h.store, h.err
}
