package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is the conventional cache file location (spec §6.3).
const DefaultPath = ".tracker-cache.json"

// Load reads and decodes a Cache from path. A missing file is not an error:
// it returns a fresh empty cache, since the cache is advisory and a first
// run has nothing to load (spec §4.E.1).
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(BackendMetadata{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file %s: %w", path, err)
	}
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse cache file %s: %w", path, err)
	}
	return &c, nil
}

// Save writes c to path as JSON. Atomic write-then-rename is explicitly not
// required by the contract (spec §4.E.1) — like the teacher's own SQLite
// cache, concurrent refreshes from two processes leave the file in
// whichever state the last os.WriteFile wins (spec §5).
func Save(path string, c *Cache) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache file %s: %w", path, err)
	}
	return nil
}
