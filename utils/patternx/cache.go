// File: cache.go
// Title: Compiled Pattern Cache
// Description: Compiles regexp2 expressions and keeps them in an LRU cache
//              keyed by expression and flags. The cache only memoises; a
//              cached and a fresh pattern behave identically.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation

package patternx

import (
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"

	coreerror "github.com/msto63/textkit/core/error"
	coreerrors "github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/core/log"
)

const defaultCacheSize = 128

// Flags selects matching behaviour
type Flags int

const (
	// None compiles with default options
	None Flags = 0

	// IgnoreCase matches letters case-insensitively
	IgnoreCase Flags = 1
)

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	return opts
}

// Config configures a Cache
type Config struct {
	// Size is the maximum number of compiled patterns kept
	Size int
	// MatchTimeout bounds a single match; zero means no limit
	MatchTimeout time.Duration
	// Logger receives compile and eviction events; nil discards them
	Logger *log.Logger
}

// DefaultConfig returns the configuration of the Default cache
func DefaultConfig() Config {
	return Config{Size: defaultCacheSize}
}

type cacheKey struct {
	expr  string
	flags Flags
}

// Cache compiles and memoises patterns. It is safe for concurrent use.
type Cache struct {
	patterns *lru.Cache[cacheKey, *regexp2.Regexp]
	timeout  time.Duration
	logger   *log.Logger
}

// NewCache creates a pattern cache
func NewCache(config Config) (*Cache, error) {
	if config.Size <= 0 {
		config.Size = defaultCacheSize
	}
	if config.MatchTimeout < 0 {
		return nil, coreerrors.InvalidArgument(coreerrors.ModulePatternx, "NewCache", "MatchTimeout",
			config.MatchTimeout, "non-negative duration")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithName("patternx")

	patterns, err := lru.NewWithEvict(config.Size, func(key cacheKey, _ *regexp2.Regexp) {
		logger.Trace("evicted pattern", log.String("expr", key.expr))
	})
	if err != nil {
		return nil, coreerrors.OperationFailed(coreerrors.ModulePatternx, "NewCache", err)
	}

	return &Cache{
		patterns: patterns,
		timeout:  config.MatchTimeout,
		logger:   logger,
	}, nil
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the shared cache used by package-level helpers
func Default() *Cache {
	defaultOnce.Do(func() {
		c, err := NewCache(DefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultCache = c
	})
	return defaultCache
}

// Compile returns the compiled form of expr, from the cache when possible
func (c *Cache) Compile(expr string, flags Flags) (*regexp2.Regexp, error) {
	key := cacheKey{expr: expr, flags: flags}
	if re, ok := c.patterns.Get(key); ok {
		return re, nil
	}

	re, err := regexp2.Compile(expr, flags.options())
	if err != nil {
		perr := coreerrors.InvalidPattern(coreerrors.ModulePatternx, "Compile", expr, err)
		c.logger.WarnWithErr("pattern rejected", perr, log.String("expr", expr))
		return nil, perr
	}
	if c.timeout > 0 {
		re.MatchTimeout = c.timeout
	}

	c.patterns.Add(key, re)
	c.logger.Debug("compiled pattern", log.String("expr", expr), log.Int("cached", c.patterns.Len()))
	return re, nil
}

// Len returns the number of cached patterns
func (c *Cache) Len() int {
	return c.patterns.Len()
}

// Purge drops every cached pattern
func (c *Cache) Purge() {
	c.patterns.Purge()
}

// matchFailed wraps an engine error raised while matching
func matchFailed(operation string, err error) *coreerror.Error {
	return coreerrors.OperationFailed(coreerrors.ModulePatternx, operation, err)
}
