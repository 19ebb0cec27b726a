package romaji

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the maximum number of entries in a Converter's cache.
// At ~100 bytes per entry, 100k entries uses approximately 10MB of memory.
const DefaultCacheSize = 100_000

// Converter memoizes encode and decode results for repeated-input
// workloads. The zero-value functions EncodeKatakana and DecodeToHiragana
// stay allocation-free per call; a Converter trades memory for skipping
// repeated scans. Safe for concurrent use.
type Converter struct {
	cache *lru.Cache[string, string]
}

// NewConverter creates a converter with an LRU result cache.
func NewConverter() *Converter {
	cache, _ := lru.New[string, string](DefaultCacheSize)
	return &Converter{cache: cache}
}

// NewConverterNoCache creates a converter without caching.
// Use this when memory is constrained or inputs rarely repeat.
func NewConverterNoCache() *Converter {
	return &Converter{}
}

// Encode converts katakana to romaji under the given system.
func (c *Converter) Encode(text string, sys System) string {
	if c.cache == nil {
		return EncodeKatakana(text, sys)
	}
	key := "e:" + sys.String() + ":" + text
	if out, ok := c.cache.Get(key); ok {
		return out
	}
	out := EncodeKatakana(text, sys)
	c.cache.Add(key, out)
	return out
}

// Decode converts romaji to hiragana.
func (c *Converter) Decode(text string) string {
	if c.cache == nil {
		return DecodeToHiragana(text)
	}
	key := "d:" + text
	if out, ok := c.cache.Get(key); ok {
		return out
	}
	out := DecodeToHiragana(text)
	c.cache.Add(key, out)
	return out
}

// ClearCache clears the memoization cache.
func (c *Converter) ClearCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (c *Converter) CacheSize() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (c *Converter) CacheEnabled() bool {
	return c.cache != nil
}
