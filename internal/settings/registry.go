package settings

import "sync"

// Registry hands out one Settings instance per host application key,
// creating it lazily on first access. It replaces the thread-local
// application lookup of classic web frameworks with an explicit,
// injectable object owned by whoever bootstraps the host.
type Registry struct {
	mu      sync.Mutex
	entries map[any]*Settings
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[any]*Settings)}
}

// For returns the Settings for the given application key, invoking build on
// first access. Concurrent callers for the same key observe one instance;
// the build function runs at most once per key.
func (r *Registry) For(key any, build func() (*Settings, error)) (*Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.entries[key]; ok {
		return s, nil
	}

	s, err := build()
	if err != nil {
		return nil, err
	}
	r.entries[key] = s
	return s, nil
}

// Drop removes the Settings for the key, if present.
func (r *Registry) Drop(key any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}
