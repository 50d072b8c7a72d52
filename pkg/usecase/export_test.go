package usecase

type RecentCache = recentCache

var (
	NewRecentCache = newRecentCache
	CacheKey       = cacheKey
)
