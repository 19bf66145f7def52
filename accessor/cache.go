package accessor

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"fastflect/catalog"
	"fastflect/shared/logger"
)

// Key identifies one cache entry. Members are keyed by descriptor, since two
// catalogs may register the same owner and name against different storage.
type Key struct {
	Member *catalog.Member
	Mode   Flags
	Op     Op
}

// CompileFunc produces an accessor; Compile is the default
type CompileFunc func(m *catalog.Member, mode Flags, op Op) (*Accessor, error)

// Stats is a point-in-time snapshot of cache activity
type Stats struct {
	Entries      int
	Hits         uint64
	Misses       uint64
	Compilations uint64
	Failures     uint64
	// Discarded counts compilations that lost the race to store their key
	Discarded uint64
}

// Cache maps (descriptor, mode, op) to the first accessor successfully compiled
// for it. Entries are never replaced or evicted; a cache lives as long as its
// owner keeps it. A catalog hands out one descriptor per member, so callers
// sharing a catalog share entries.
type Cache struct {
	id      string
	entries sync.Map // Key -> *Accessor
	compile CompileFunc
	log     logger.Logger

	size         atomic.Int64
	hits         atomic.Uint64
	misses       atomic.Uint64
	compilations atomic.Uint64
	failures     atomic.Uint64
	discarded    atomic.Uint64
}

// CacheOption configures a Cache
type CacheOption func(*Cache)

// WithLogger sends debug events about stored entries to l. Caches are silent by default.
func WithLogger(l logger.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCompiler replaces the compiler used on a miss
func WithCompiler(fn CompileFunc) CacheOption {
	return func(c *Cache) {
		if fn != nil {
			c.compile = fn
		}
	}
}

// WithID names the cache in logs and metrics instead of a generated UUID
func WithID(id string) CacheOption {
	return func(c *Cache) {
		if id != "" {
			c.id = id
		}
	}
}

// NewCache creates an empty cache
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		id:      uuid.NewString(),
		compile: Compile,
		log:     logger.NewNoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies the cache in logs and metrics
func (c *Cache) ID() string {
	return c.id
}

// GetOrCompile returns the stored accessor for the key, compiling and storing one on a miss.
// Concurrent misses on one key may all compile, but every caller gets the stored winner.
func (c *Cache) GetOrCompile(m *catalog.Member, mode Flags, op Op) (*Accessor, error) {
	if m == nil {
		c.failures.Add(1)
		return nil, &MemberAccessError{Mode: mode, Op: op, Reason: "nil member descriptor"}
	}

	key := Key{Member: m, Mode: mode, Op: op}
	if cached, ok := c.entries.Load(key); ok {
		c.hits.Add(1)
		return cached.(*Accessor), nil
	}
	c.misses.Add(1)

	compiled, err := c.compile(m, mode, op)
	if err == nil && compiled == nil {
		err = &MemberAccessError{Member: m.ID(), Mode: mode, Op: op, Reason: "compiler returned no accessor"}
	}
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.compilations.Add(1)

	stored, loaded := c.entries.LoadOrStore(key, compiled)
	if loaded {
		c.discarded.Add(1)
		return stored.(*Accessor), nil
	}
	c.size.Add(1)

	c.log.Debug("Stored compiled accessor",
		logger.String("cache_id", c.id),
		logger.String("member", m.ID().String()),
		logger.String("mode", mode.String()),
		logger.String("op", op.String()),
		logger.String("shape", compiled.Shape().String()))

	return compiled, nil
}

// Lookup returns a stored accessor without compiling
func (c *Cache) Lookup(m *catalog.Member, mode Flags, op Op) (*Accessor, bool) {
	if m == nil {
		return nil, false
	}
	cached, ok := c.entries.Load(Key{Member: m, Mode: mode, Op: op})
	if !ok {
		return nil, false
	}
	return cached.(*Accessor), true
}

// Len returns the number of stored accessors
func (c *Cache) Len() int {
	return int(c.size.Load())
}

// Keys returns the keys of all stored accessors in no particular order
func (c *Cache) Keys() []Key {
	keys := make([]Key, 0, c.Len())
	c.entries.Range(func(k, _ any) bool {
		keys = append(keys, k.(Key))
		return true
	})
	return keys
}

// Stats returns a snapshot of the cache counters
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:      c.Len(),
		Hits:         c.hits.Load(),
		Misses:       c.misses.Load(),
		Compilations: c.compilations.Load(),
		Failures:     c.failures.Load(),
		Discarded:    c.discarded.Load(),
	}
}

// Process-wide cache for callers that don't need isolation
var defaultCache = NewCache()

// DefaultCache returns the process-wide cache
func DefaultCache() *Cache {
	return defaultCache
}

// GetOrCompile uses the process-wide cache
func GetOrCompile(m *catalog.Member, mode Flags, op Op) (*Accessor, error) {
	return defaultCache.GetOrCompile(m, mode, op)
}
