package sosa

import (
	"os"
	"strconv"
	"sync"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// rootEnvVar is the environment variable consulted by resolveRootIndex and
// ensure_from_config when no override or settings value is supplied.
const rootEnvVar = "SOSA_ROOT"

// settingsLookup is the minimal read-only mapping ensure_from_config reads
// a root from; pedigree.Store/gw/gedcombridge callers hand in their
// settings.Source, a plain string-keyed store satisfies the same shape.
type settingsLookup interface {
	Lookup(key string) (string, bool)
}

// Manager owns the graph snapshot and lazily builds/caches a Cache per
// root. Construction and invalidation of a given root are serialized by
// mu; once built, a Cache itself is read safely without further locking.
type Manager struct {
	mu     sync.Mutex
	store  *pedigree.Store
	caches map[uint32]*Cache
}

// NewManager wraps store for Sosa cache management.
func NewManager(store *pedigree.Store) *Manager {
	return &Manager{
		store:  store,
		caches: make(map[uint32]*Cache),
	}
}

// GetCache returns the cache for rootIndex, building it on first request.
func (m *Manager) GetCache(rootIndex uint32) (*Cache, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cache, ok := m.caches[rootIndex]; ok {
		return cache, nil
	}
	cache, err := build(m.store, rootIndex)
	if err != nil {
		return nil, err
	}
	m.caches[rootIndex] = cache
	return cache, nil
}

// DropCache invalidates the cache for rootIndex only; other roots' caches
// are untouched.
func (m *Manager) DropCache(rootIndex uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.caches, rootIndex)
}

// UpdateData replaces the underlying graph snapshot and invalidates every
// cached root atomically.
func (m *Manager) UpdateData(store *pedigree.Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = store
	m.caches = make(map[uint32]*Cache)
}

// EnsureFromConfig resolves a root index via rootOverride, settings, or the
// environment (in that precedence) and returns its cache, building it if
// necessary.
func (m *Manager) EnsureFromConfig(rootOverride *uint32, settings settingsLookup) (*Cache, error) {
	rootIndex, err := resolveRootIndex(rootOverride, settings)
	if err != nil {
		return nil, err
	}
	return m.GetCache(rootIndex)
}

// resolveRootIndex implements the precedence: explicit override, then a
// settings mapping's "sosa_root" entry, then the SOSA_ROOT environment
// variable. Fails with MissingRootError if none yields a parsable root.
func resolveRootIndex(override *uint32, settings settingsLookup) (uint32, error) {
	if override != nil {
		return *override, nil
	}

	if settings != nil {
		if raw, ok := settings.Lookup("sosa_root"); ok {
			if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
				return uint32(parsed), nil
			}
		}
	}

	if raw, ok := os.LookupEnv(rootEnvVar); ok {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			return uint32(parsed), nil
		}
	}

	return 0, newMissingRootError(0, "no root override, settings entry, or SOSA_ROOT environment variable")
}
