package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// recognitionCache keeps provider payloads for byte-identical clips so
// a repeated upload skips the provider call. In-memory only; nothing
// survives the process.
type recognitionCache struct {
	entries *lru.Cache[string, map[string]any]
}

func newRecognitionCache(size int) *recognitionCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[string, map[string]any](size)
	if err != nil {
		return nil
	}
	return &recognitionCache{entries: entries}
}

func (c *recognitionCache) Get(key string) (map[string]any, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(key)
}

func (c *recognitionCache) Add(key string, payload map[string]any) {
	if c == nil {
		return
	}
	c.entries.Add(key, payload)
}

func clipDigest(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
