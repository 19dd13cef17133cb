package data

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run is a stored evaluation result, kept so clients can re-fetch or export it.
type Run struct {
	ID        string
	Kind      string // "calculate", "aggregate", "sensitivity"
	CreatedAt time.Time
	Payload   any
}

type cacheEntry struct {
	run       *Run
	expiresAt time.Time
}

// RunCache is an in-memory TTL store for run results. Nothing is persisted.
// A nil *RunCache is valid and stores nothing.
type RunCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time

	stop chan struct{}
	once sync.Once
}

func NewRunCache(ttl time.Duration) *RunCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RunCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
}

// StartCleanup periodically evicts expired runs until Close.
func (c *RunCache) StartCleanup(interval time.Duration) {
	if c == nil {
		return
	}
	go c.cleanup(interval)
}

func (c *RunCache) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}

// Put stores payload under a new run ID and returns the run.
// A nil cache stores nothing and the run has no ID.
func (c *RunCache) Put(kind string, payload any) *Run {
	run := &Run{
		Kind:    kind,
		Payload: payload,
	}
	if c == nil {
		run.CreatedAt = time.Now()
		return run
	}
	run.ID = uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	run.CreatedAt = c.now()
	c.store[run.ID] = &cacheEntry{run: run, expiresAt: run.CreatedAt.Add(c.ttl)}
	return run
}

// Get retrieves a run if present and not expired.
func (c *RunCache) Get(id string) (*Run, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.run, true
}

func (c *RunCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *RunCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}

func (c *RunCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

func (c *RunCache) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

// RequestKey hashes a request body so identical requests can be recognized in logs.
func RequestKey(req any) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:8])
}
