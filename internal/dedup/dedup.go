package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const seenTTL = 30 * 24 * time.Hour

// SeenCache remembers which job URLs were already notified in earlier runs
// so a re-run does not send the same posting twice. Entries expire after
// 30 days. State lives in a JSON file under the cache directory.
type SeenCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

func NewSeenCache(cacheDir string) *SeenCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &SeenCache{
		filePath: filepath.Join(cacheDir, "seen_jobs.json"),
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks if a URL was already notified.
func (c *SeenCache) IsSeen(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.seen[url]
	return exists
}

// Add marks URLs as seen and persists the cache when anything changed.
func (c *SeenCache) Add(urls []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, url := range urls {
		if _, exists := c.seen[url]; !exists {
			c.seen[url] = now
			changed = true
		}
	}
	if changed {
		c.save()
	}
}

func (c *SeenCache) load() {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_jobs.json: %v", err)
		}
		return
	}

	var entries map[string]int64
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_jobs.json: %v", err)
		return
	}

	cutoff := time.Now().Add(-seenTTL).UnixMilli()
	expired := 0
	for url, ts := range entries {
		if ts > cutoff {
			c.seen[url] = ts
		} else {
			expired++
		}
	}
	log.Printf("📋 Loaded %d previously seen jobs (%d expired and removed)", len(c.seen), expired)
}

func (c *SeenCache) save() {
	data, err := json.MarshalIndent(c.seen, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen jobs: %v", err)
		return
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_jobs.json: %v", err)
	}
}
