package registry

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// Source is a named feed endpoint.
type Source struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// UnknownSourceError is returned when a caller asks for a source that is not registered.
type UnknownSourceError struct {
	Name string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown news source: %s", e.Name)
}

// Registry maps source names to feed URLs, preserving insertion order.
// Additions live only as long as the Registry value.
type Registry struct {
	mu      sync.RWMutex
	sources []Source
	index   map[string]int
}

func New(sources ...Source) *Registry {
	r := &Registry{index: make(map[string]int, len(sources))}
	for _, s := range sources {
		r.Add(s.Name, s.URL)
	}
	return r
}

// Get returns the feed URL for name.
func (r *Registry) Get(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return "", &UnknownSourceError{Name: name}
	}
	return r.sources[i].URL, nil
}

// Add inserts a source or overwrites the URL of an existing one in place.
func (r *Registry) Add(name, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[name]; ok {
		r.sources[i].URL = url
		return
	}
	r.index[name] = len(r.sources)
	r.sources = append(r.sources, Source{Name: name, URL: url})
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]
	return ok
}

// List returns a copy of all sources in insertion order.
func (r *Registry) List() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

func (r *Registry) Names() []string {
	return lo.Map(r.List(), func(s Source, _ int) string { return s.Name })
}
