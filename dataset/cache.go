// SPDX-License-Identifier: MIT
// Package: dataset
//
// cache.go — persistent distance-matrix cache.
//
// Record layout (big-endian):
//
//	[0:8)   xxhash64 of bytes [8:)
//	[8:12)  n
//	[12:)   n(n−1)/2 float64 distances, packed lower triangle

package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cespare/xxhash"
	"github.com/cockroachdb/pebble"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/filtra/distance"
)

const headerLen = 12

var (
	// ErrNotFound indicates a cache miss.
	ErrNotFound = errors.New("dataset: not found")

	// ErrCorrupt indicates a record whose checksum or length does not match.
	ErrCorrupt = errors.New("dataset: corrupt record")

	// ErrClosed indicates use of a closed cache.
	ErrClosed = errors.New("dataset: cache closed")
)

// DefaultMemEntries is the LRU size used when Open gets memEntries ≤ 0.
const DefaultMemEntries = 64

// CacheStats counts lookups since Open.
type CacheStats struct {
	MemHits  uint64
	DiskHits uint64
	Misses   uint64
	Writes   uint64
}

// Cache stores distance matrices in pebble with an LRU in front.
// Safe for concurrent use.
type Cache struct {
	db     *pebble.DB
	mem    *lru.Cache[string, *distance.Matrix]
	closed atomic.Bool

	memHits, diskHits, misses, writes atomic.Uint64
}

// Open opens (creating if needed) the cache rooted at dir.
func Open(dir string, memEntries int) (*Cache, error) {
	if memEntries <= 0 {
		memEntries = DefaultMemEntries
	}
	mem, err := lru.New[string, *distance.Matrix](memEntries)
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", dir, err)
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", dir, err)
	}

	return &Cache{db: db, mem: mem}, nil
}

// Get returns the matrix stored under key, or ErrNotFound.
// Matrices are shared with the cache; callers must not Set on them.
func (c *Cache) Get(key string) (*distance.Matrix, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if m, ok := c.mem.Get(key); ok {
		c.memHits.Add(1)
		return m, nil
	}
	val, closer, err := c.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		c.misses.Add(1)
		return nil, fmt.Errorf("Get(%s): %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get(%s): %w", key, err)
	}
	m, err := decode(val)
	_ = closer.Close()
	if err != nil {
		return nil, fmt.Errorf("Get(%s): %w", key, err)
	}
	c.diskHits.Add(1)
	c.mem.Add(key, m)

	return m, nil
}

// Put stores m under key, synced to disk.
func (c *Cache) Put(key string, m *distance.Matrix) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if err := c.db.Set([]byte(key), encode(m), pebble.Sync); err != nil {
		return fmt.Errorf("Put(%s): %w", key, err)
	}
	c.writes.Add(1)
	c.mem.Add(key, m)

	return nil
}

// GetOrCompute returns the cached matrix for key, or computes, stores and
// returns it. A corrupt record counts as a miss and is overwritten.
// hit reports whether compute was skipped.
func (c *Cache) GetOrCompute(key string, compute func() (*distance.Matrix, error)) (m *distance.Matrix, hit bool, err error) {
	m, err = c.Get(key)
	if err == nil {
		return m, true, nil
	}
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrCorrupt) {
		return nil, false, err
	}
	if m, err = compute(); err != nil {
		return nil, false, err
	}
	if err = c.Put(key, m); err != nil {
		return nil, false, err
	}

	return m, false, nil
}

// Stats returns a snapshot of the lookup counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		MemHits:  c.memHits.Load(),
		DiskHits: c.diskHits.Load(),
		Misses:   c.misses.Load(),
		Writes:   c.writes.Load(),
	}
}

// Len returns the number of matrices held in memory.
func (c *Cache) Len() int {
	return c.mem.Len()
}

// Close flushes and closes the store. Further calls return ErrClosed.
func (c *Cache) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	c.mem.Purge()

	return c.db.Close()
}

func encode(m *distance.Matrix) []byte {
	packed := m.Packed()
	buf := make([]byte, headerLen+8*len(packed))
	binary.BigEndian.PutUint32(buf[8:12], uint32(m.Size()))
	for i, d := range packed {
		binary.BigEndian.PutUint64(buf[headerLen+8*i:], math.Float64bits(d))
	}
	binary.BigEndian.PutUint64(buf[0:8], xxhash.Sum64(buf[8:]))

	return buf
}

// decode copies out of val; pebble owns val until the closer runs.
func decode(val []byte) (*distance.Matrix, error) {
	if len(val) < headerLen {
		return nil, ErrCorrupt
	}
	if binary.BigEndian.Uint64(val[0:8]) != xxhash.Sum64(val[8:]) {
		return nil, ErrCorrupt
	}
	n := int(binary.BigEndian.Uint32(val[8:12]))
	body := val[headerLen:]
	if len(body) != 8*(n*(n-1)/2) {
		return nil, ErrCorrupt
	}
	packed := make([]float64, len(body)/8)
	for i := range packed {
		packed[i] = math.Float64frombits(binary.BigEndian.Uint64(body[8*i:]))
	}
	m, err := distance.FromPacked(n, packed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return m, nil
}
