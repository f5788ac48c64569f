// Package store persists review history and the review result cache in
// SQLite.
//
// Two independent tables back the service: reviews holds the immutable
// per-session history log, and review_cache holds one row per code
// fingerprint with a time-based expiry. Expired cache rows are never
// surfaced by lookups but are not deleted on the request path; the
// PruneExpiredCache helper exists for external housekeeping.
//
// Timestamps are stored as unix milliseconds so expiry filters and ordering
// happen in SQL without string-format pitfalls. Schema changes go through
// numbered files in migrations/.
package store
