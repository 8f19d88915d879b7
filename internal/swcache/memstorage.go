package swcache

import (
	"context"
	"sync"
)

// MemStorage is an in-memory Storage keyed by cache name, then by request
// URL. Entries are cloned on the way in and out so callers cannot mutate a
// cached response.
type MemStorage struct {
	mu     sync.RWMutex
	caches map[string]*memCache
}

func NewMemStorage() *MemStorage {
	return &MemStorage{caches: make(map[string]*memCache)}
}

func (s *MemStorage) Open(_ context.Context, name string) (Cache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.caches[name]
	if !ok {
		c = &memCache{entries: make(map[string]*Response)}
		s.caches[name] = c
	}

	return c, nil
}

func (s *MemStorage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}

	return names, nil
}

func (s *MemStorage) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.caches[name]
	delete(s.caches, name)

	return ok, nil
}

type memCache struct {
	mu      sync.RWMutex
	entries map[string]*Response
}

func (c *memCache) Match(_ context.Context, req *Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.entries[req.URL.String()]
	if !ok {
		return nil, nil
	}

	return resp.Clone(), nil
}

func (c *memCache) Put(_ context.Context, req *Request, resp *Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[req.URL.String()] = resp.Clone()
	return nil
}
