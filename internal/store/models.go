package store

import (
	"time"

	"reviewd/internal/review"
)

// CacheEntry is one row of the review_cache table: the stored result for a
// single code fingerprint. At most one row exists per fingerprint; a new
// write for the same fingerprint replaces the old one.
type CacheEntry struct {
	Fingerprint string
	Language    string
	Result      review.Result
	CreatedAt   time.Time
	ExpiresAt   time.Time
	HitCount    int64
}

// Live reports whether the entry is still valid at the given instant.
func (e *CacheEntry) Live(now time.Time) bool {
	return e != nil && now.Before(e.ExpiresAt)
}

// HistoryRecord is one row of the reviews table: an immutable log entry for
// a single review request. Code is empty on records returned by session
// listings; the column is omitted from that query, not from storage.
type HistoryRecord struct {
	ID          string        `json:"id"`
	SessionID   string        `json:"sessionId"`
	Code        string        `json:"code,omitempty"`
	Language    string        `json:"language"`
	Result      review.Result `json:"results"`
	Fingerprint string        `json:"fingerprint"`
	FromCache   bool          `json:"fromCache"`
	CreatedAt   time.Time     `json:"timestamp"`
}

// LanguageCount pairs a language tag with its review count.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

// Stats aggregates review history across all sessions.
type Stats struct {
	TotalReviews int64           `json:"totalReviews"`
	Languages    []LanguageCount `json:"languages"`
}

// CacheSummary reports cache occupancy for status and stats endpoints.
type CacheSummary struct {
	Entries   int64 `json:"entries"`
	Live      int64 `json:"live"`
	TotalHits int64 `json:"totalHits"`
}
