package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/secmon-lab/slacktable/pkg/domain/model/reaction"
)

// recentCache remembers recently handled reactions so repeated reactions
// on the same message do not create duplicate records. Entries expire
// after the TTL; the cache is in-memory only, matching the at-most-once
// guarantee of the pipeline.
type recentCache struct {
	ttl time.Duration

	mu   sync.Mutex
	seen map[string]time.Time
}

func newRecentCache(ttl time.Duration) *recentCache {
	return &recentCache{
		ttl:  ttl,
		seen: make(map[string]time.Time),
	}
}

func cacheKey(ev *reaction.Event) string {
	return strings.Join([]string{ev.ChannelID(), ev.MessageTS(), ev.Emoji()}, "/")
}

// MarkHandled records the reaction and reports whether it was new. A
// false return means an identical reaction was handled within the TTL.
func (c *recentCache) MarkHandled(ev *reaction.Event) bool {
	now := time.Now()
	key := cacheKey(ev)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Prune expired entries while we hold the lock
	for k, at := range c.seen {
		if now.Sub(at) > c.ttl {
			delete(c.seen, k)
		}
	}

	if at, ok := c.seen[key]; ok && now.Sub(at) <= c.ttl {
		return false
	}

	c.seen[key] = now
	return true
}

// Forget drops the reaction from the cache so a later identical reaction
// can be handled again. Called when no record was created.
func (c *recentCache) Forget(ev *reaction.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.seen, cacheKey(ev))
}
