package swcache

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// Manager serves cached responses for a single origin with a
// stale-while-revalidate strategy and prunes caches left behind by older
// deployment versions.
type Manager struct {
	storage Storage
	fetcher Fetcher
	origin  *url.URL

	installCache string
	runtimeCache string
	shell        []string

	revalidations sync.WaitGroup
}

const cacheNamePrefix = "charcoals-"

// New binds a manager to an origin and a deployment version tag. The shell
// paths are pre-cached at install time; when empty, only the root document
// is.
func New(storage Storage, fetcher Fetcher, origin, version string, shell []string) (*Manager, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("url.Parse origin[%s]: %w", origin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("origin[%s] must be absolute", origin)
	}
	if version == "" {
		return nil, fmt.Errorf("version is empty")
	}

	if len(shell) == 0 {
		shell = []string{"/"}
	}

	return &Manager{
		storage:      storage,
		fetcher:      fetcher,
		origin:       u,
		installCache: cacheNamePrefix + version,
		runtimeCache: "runtime-" + version,
		shell:        shell,
	}, nil
}

func (m *Manager) InstallCacheName() string { return m.installCache }
func (m *Manager) RuntimeCacheName() string { return m.runtimeCache }

// Install pre-populates the install-time cache with the application shell.
// Any failure aborts the version transition, leaving prior caches intact.
func (m *Manager) Install(ctx context.Context) error {
	cache, err := m.storage.Open(ctx, m.installCache)
	if err != nil {
		return fmt.Errorf("storage.Open[%s]: %w", m.installCache, err)
	}

	for _, path := range m.shell {
		req := &Request{Method: http.MethodGet, URL: m.origin.JoinPath(path)}

		resp, err := m.fetcher.Fetch(ctx, req)
		if err != nil {
			return fmt.Errorf("fetch shell[%s]: %w", path, err)
		}
		if resp.Status != http.StatusOK {
			return fmt.Errorf("fetch shell[%s]: status %d", path, resp.Status)
		}

		if err := cache.Put(ctx, req, resp); err != nil {
			return fmt.Errorf("cache.Put[%s]: %w", path, err)
		}
	}

	return nil
}

// Activate deletes every cache whose name belongs to neither the current
// install nor runtime cache. Caches of the running version are never touched,
// so in-flight fetches from a previous version cannot lose their cache
// mid-request.
func (m *Manager) Activate(ctx context.Context) error {
	names, err := m.storage.Keys(ctx)
	if err != nil {
		return fmt.Errorf("storage.Keys: %w", err)
	}

	for _, name := range names {
		if name == m.installCache || name == m.runtimeCache {
			continue
		}
		if _, err := m.storage.Delete(ctx, name); err != nil {
			return fmt.Errorf("storage.Delete[%s]: %w", name, err)
		}
	}

	return nil
}

// Intercepts reports whether the request is handled by the cache layer:
// GET only, never video, and either an image or a same-origin asset.
func (m *Manager) Intercepts(req *Request) bool {
	if req == nil || req.URL == nil {
		return false
	}
	if req.Method != http.MethodGet {
		return false
	}
	if req.Destination == DestVideo {
		return false
	}

	return req.Destination == DestImage || m.sameOrigin(req.URL)
}

// Fetch resolves a request. Non-intercepted requests go straight to the
// network. Intercepted requests use stale-while-revalidate: a cached
// response is returned immediately while a background fetch refreshes the
// runtime cache for the next request.
func (m *Manager) Fetch(ctx context.Context, req *Request) (*Response, error) {
	if !m.Intercepts(req) {
		return m.fetcher.Fetch(ctx, req)
	}

	cache, err := m.storage.Open(ctx, m.runtimeCache)
	if err != nil {
		// steady-state open failure degrades to plain network
		return m.fetcher.Fetch(ctx, req)
	}

	cached, err := cache.Match(ctx, req)
	if err != nil {
		cached = nil
	}

	if cached != nil {
		m.revalidations.Add(1)
		go func(ctx context.Context) {
			defer m.revalidations.Done()
			m.revalidate(ctx, cache, req)
		}(context.WithoutCancel(ctx))

		return cached, nil
	}

	resp, err := m.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch: %w", err)
	}

	m.maybeStore(ctx, cache, req, resp)

	return resp, nil
}

// Wait blocks until in-flight background revalidations have settled.
func (m *Manager) Wait() {
	m.revalidations.Wait()
}

func (m *Manager) revalidate(ctx context.Context, cache Cache, req *Request) {
	resp, err := m.fetcher.Fetch(ctx, req)
	if err != nil {
		// the caller already has the cached response
		return
	}

	m.maybeStore(ctx, cache, req, resp)
}

// maybeStore caches successful same-origin responses for the next request.
func (m *Manager) maybeStore(ctx context.Context, cache Cache, req *Request, resp *Response) {
	if resp.Status != http.StatusOK || !m.sameOrigin(req.URL) {
		return
	}

	_ = cache.Put(ctx, req, resp.Clone())
}

func (m *Manager) sameOrigin(u *url.URL) bool {
	return u.Scheme == m.origin.Scheme && u.Host == m.origin.Host
}
