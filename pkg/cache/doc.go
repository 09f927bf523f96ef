// Package cache provides a generic in-memory key-value cache with TTL
// support and singleflight-deduplicated loading.
//
// The aggregation engine uses it to keep parsed lookup tables (the
// language-to-charset table, the time-zone table) across emission passes,
// so watch-style rebuilds do not re-read and re-parse them.
package cache
