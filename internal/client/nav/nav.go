// Package nav carries navigation effects out of the core: components ask
// for a redirect, the presentation layer decides what showing a path means.
package nav

import "sync"

// Navigator receives redirect requests.
type Navigator interface {
	RedirectTo(path string)
}

// Func adapts a plain function to Navigator.
type Func func(path string)

func (f Func) RedirectTo(path string) { f(path) }

// Queue is a Navigator that keeps requested paths in order until they are
// taken with Next. It also remembers everything it was ever asked for.
type Queue struct {
	mu      sync.Mutex
	pending []string
	history []string
}

func (q *Queue) RedirectTo(path string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, path)
	q.history = append(q.history, path)
}

// Next pops the oldest pending path.
func (q *Queue) Next() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return "", false
	}
	p := q.pending[0]
	q.pending = q.pending[1:]
	return p, true
}

// Drop forgets pending paths without following them.
func (q *Queue) Drop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
}

// History returns every path requested so far.
func (q *Queue) History() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.history...)
}
