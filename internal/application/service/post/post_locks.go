package post_service

import "sync"

// postLocks serializes writers per post id. Entries are dropped once the
// last holder releases them.
type postLocks struct {
	mu    sync.Mutex
	locks map[int64]*postLock
}

type postLock struct {
	mu   sync.Mutex
	refs int
}

func newPostLocks() *postLocks {
	return &postLocks{locks: make(map[int64]*postLock)}
}

// Lock blocks until the caller owns id and returns the release func.
func (l *postLocks) Lock(id int64) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &postLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *postLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
