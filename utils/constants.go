// File: utils/constants.go
package utils

import "time"

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the time-to-live for role cache entries.
const RoleCacheTTL = 10 * time.Minute

// CatalogCacheKey holds the cached active-service listing.
const CatalogCacheKey = "catalog:services:active"

// CatalogCacheTTL is the time-to-live for the catalog cache.
const CatalogCacheTTL = 5 * time.Minute

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for booking times.
const TimeLayout = "15:04"
