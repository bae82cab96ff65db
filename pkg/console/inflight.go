package console

import "sync"

// InFlight is the set of commands currently running, keyed by target id
type InFlight struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewInFlight makes an empty set
func NewInFlight() *InFlight {
	return &InFlight{ids: map[string]struct{}{}}
}

// Add marks id as in flight. Returns false if it already was.
func (f *InFlight) Add(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ids[id]; ok {
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// Remove clears the marker of id
func (f *InFlight) Remove(id string) {
	f.mu.Lock()
	delete(f.ids, id)
	f.mu.Unlock()
}

// Contains reports whether a command for id is running
func (f *InFlight) Contains(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ids[id]
	return ok
}

// Len returns the number of running commands
func (f *InFlight) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ids)
}
