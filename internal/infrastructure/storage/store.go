// Package storage implements the best-effort local key/value adapter. Each
// key is one JSON file under the data directory, fronted by an in-process
// cache so repeated reads skip the disk.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/metrics"
)

// FileStore satisfies ports.KeyValueStore. All operations are synchronous
// and best-effort: failures are logged and reported as false, never raised.
// A failed write is terminal for that write; there are no retries.
type FileStore struct {
	dir   string
	cache *gocache.Cache
	log   zerolog.Logger
}

// New creates the data directory if needed. Directory creation failure is
// tolerated: the store still works as a cache-only layer and every write
// will report false.
func New(dir string, log zerolog.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("storage directory unavailable; persistence disabled")
	}
	return &FileStore{
		dir:   dir,
		cache: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		log:   log,
	}
}

// Get unmarshals the stored value into v. Reports false on missing key,
// unreadable file, or decode failure.
func (s *FileStore) Get(key string, v any) bool {
	if raw, ok := s.cache.Get(key); ok {
		if err := json.Unmarshal(raw.([]byte), v); err == nil {
			return true
		}
	}

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			metrics.StorageFailuresTotal.WithLabelValues("get").Inc()
			s.log.Error().Err(err).Str("key", key).Msg("failed to read stored value")
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		metrics.StorageFailuresTotal.WithLabelValues("get").Inc()
		s.log.Error().Err(err).Str("key", key).Msg("stored value is corrupt")
		return false
	}
	s.cache.SetDefault(key, raw)
	return true
}

// Set serializes v and writes it through to disk and cache.
func (s *FileStore) Set(key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		metrics.StorageFailuresTotal.WithLabelValues("set").Inc()
		s.log.Error().Err(err).Str("key", key).Msg("failed to serialize value")
		return false
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		metrics.StorageFailuresTotal.WithLabelValues("set").Inc()
		s.log.Error().Err(err).Str("key", key).Msg("failed to store value")
		return false
	}
	s.cache.SetDefault(key, raw)
	return true
}

// Remove deletes the key. Removing an absent key succeeds.
func (s *FileStore) Remove(key string) bool {
	s.cache.Delete(key)
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		metrics.StorageFailuresTotal.WithLabelValues("remove").Inc()
		s.log.Error().Err(err).Str("key", key).Msg("failed to remove stored value")
		return false
	}
	return true
}

// path maps a key to its file, sanitizing separators so a key can never
// escape the data directory.
func (s *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
