package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"citizens-voice-http-service/internal/domain/services"

	"github.com/gin-gonic/gin"
)

// cacheKeyPrefix namespaces response-cache keys so a flush can clear
// them without touching other Redis data.
const cacheKeyPrefix = "respcache:"

// cacheEntry is one cached response body
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// memoryCache is the in-process fallback store
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var cache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// redisCache, when set, backs the middleware instead of process memory
var redisCache services.InterfaceRedisService

// SetCacheBackend switches the response cache to Redis. Passing nil keeps
// the in-process store.
func SetCacheBackend(svc services.InterfaceRedisService) {
	redisCache = svc
}

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration             // entry lifetime
	Methods    []string                  // HTTP methods worth caching
	KeyFunc    func(*gin.Context) string // cache key derivation
}

// DefaultCacheConfig is used when a route passes no config
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

// defaultKeyFunc hashes path plus sorted query parameters
func defaultKeyFunc(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + queryString))
	return cacheKeyPrefix + hex.EncodeToString(hasher.Sum(nil))
}

// cachedWriter captures the response body while it is streamed out
type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func lookup(key string) ([]byte, bool) {
	if redisCache != nil {
		var content []byte
		if err := redisCache.Get(key, &content); err == nil {
			return content, true
		}
		return nil, false
	}

	cache.RLock()
	defer cache.RUnlock()
	entry, ok := cache.items[key]
	if !ok || time.Now().After(entry.Expiration) {
		return nil, false
	}
	return entry.Content, true
}

func store(key string, content []byte, expiration time.Duration) {
	if redisCache != nil {
		// Failure to cache is not a request failure
		_ = redisCache.Set(key, content, expiration)
		return
	}

	cache.Lock()
	defer cache.Unlock()
	cache.items[key] = cacheEntry{
		Content:    content,
		Expiration: time.Now().Add(expiration),
	}
}

// Cache returns a middleware serving cached JSON bodies on hot GET routes.
// Routes whose values must be fresh on every call (the live snapshot) must
// not be wrapped with it.
func Cache(config ...CacheConfig) gin.HandlerFunc {
	cfg := DefaultCacheConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		methodAllowed := false
		for _, method := range cfg.Methods {
			if c.Request.Method == method {
				methodAllowed = true
				break
			}
		}
		if !methodAllowed {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)
		if content, ok := lookup(key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			store(key, writer.body.Bytes(), cfg.Expiration)
		}
	}
}

// FlushCache drops all cached responses, in the Redis backend when one is
// configured and in the in-process store either way. Used after mutations
// and in tests.
func FlushCache() {
	if redisCache != nil {
		// A failed flush only means stale reads until the TTL runs out
		_ = redisCache.DeletePrefix(cacheKeyPrefix)
	}

	cache.Lock()
	defer cache.Unlock()
	cache.items = make(map[string]cacheEntry)
}
