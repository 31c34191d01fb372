package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"tern/internal/project"
)

// cacheSchemaVersion invalidates stored payloads when the format changes.
const cacheSchemaVersion uint16 = 1

// Payload is one cached per-file check result, keyed by content hash.
// Only rendered artifacts are stored; the type table itself is rebuilt on
// any miss.
type Payload struct {
	Schema      uint16
	Diagnostics string
	Dump        string
	Broken      bool
}

// DiskCache stores check results under the user cache directory, keyed by
// the file's content hash. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes the cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "checks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory (tests,
// project-local caches).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Get answers the cached payload for a content hash.
func (c *DiskCache) Get(key project.Digest) (*Payload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload Payload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Put stores a payload; failures are swallowed, the cache is best-effort.
func (c *DiskCache) Put(key project.Digest, payload *Payload) {
	if c == nil || payload == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(payload)
	if err != nil {
		return
	}
	tmp := c.pathFor(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return
	}
	_ = os.Rename(tmp, c.pathFor(key))
}

// Clear removes every cached payload.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	var firstErr error
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".mp" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil && !errors.Is(firstErr, os.ErrNotExist) {
		return firstErr
	}
	return nil
}
