package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reviewd/internal/review"
)

// LookupCache returns the live cache entry for a fingerprint and language,
// or nil when no live entry exists. Expired rows are filtered here, never
// returned, and never deleted by this call.
func (s *Store) LookupCache(ctx context.Context, fingerprint, language string) (*CacheEntry, error) {
	ctx = ensureContext(ctx)
	now := time.Now().UTC()
	row := s.db.QueryRowContext(
		ctx,
		`SELECT fingerprint, language, result_json, created_at, expires_at, hit_count
         FROM review_cache
         WHERE fingerprint = ? AND language = ? AND expires_at > ?`,
		fingerprint,
		language,
		now.UnixMilli(),
	)
	entry, err := scanCacheEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup cache: %w", err)
	}
	return entry, nil
}

// SaveCache upserts the cache entry for a fingerprint with
// expires_at = now + ttl. An existing row for the same fingerprint, expired
// or not, is replaced and its hit count reset.
func (s *Store) SaveCache(ctx context.Context, fingerprint, language string, result *review.Result, ttl time.Duration) (*CacheEntry, error) {
	if fingerprint == "" {
		return nil, errors.New("save cache: fingerprint required")
	}
	if result == nil {
		return nil, errors.New("save cache: result required")
	}
	if ttl <= 0 {
		return nil, errors.New("save cache: ttl must be positive")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("save cache: marshal result: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	_, err = s.execWithRetry(
		ctx,
		`INSERT INTO review_cache (fingerprint, language, result_json, created_at, expires_at, hit_count)
         VALUES (?, ?, ?, ?, ?, 0)
         ON CONFLICT(fingerprint) DO UPDATE SET
             language = excluded.language,
             result_json = excluded.result_json,
             created_at = excluded.created_at,
             expires_at = excluded.expires_at,
             hit_count = 0`,
		fingerprint,
		language,
		string(payload),
		now.UnixMilli(),
		expiresAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("save cache: %w", err)
	}

	return &CacheEntry{
		Fingerprint: fingerprint,
		Language:    language,
		Result:      *result,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}, nil
}

// RecordCacheHit increments the hit counter for a fingerprint. Callers treat
// this as best-effort; a failure must not fail the request that hit.
func (s *Store) RecordCacheHit(ctx context.Context, fingerprint string) error {
	_, err := s.execWithRetry(
		ctx,
		`UPDATE review_cache SET hit_count = hit_count + 1 WHERE fingerprint = ?`,
		fingerprint,
	)
	if err != nil {
		return fmt.Errorf("record cache hit: %w", err)
	}
	return nil
}

// PruneExpiredCache deletes rows whose expiry has passed and reports how
// many were removed. Nothing on the request path calls this; it exists for
// external housekeeping.
func (s *Store) PruneExpiredCache(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(
		ctx,
		`DELETE FROM review_cache WHERE expires_at <= ?`,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("prune expired cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune expired cache: rows affected: %w", err)
	}
	return removed, nil
}

// CacheSummary reports entry counts and accumulated hits.
func (s *Store) CacheSummary(ctx context.Context) (*CacheSummary, error) {
	ctx = ensureContext(ctx)
	var summary CacheSummary
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1),
                COALESCE(SUM(CASE WHEN expires_at > ? THEN 1 ELSE 0 END), 0),
                COALESCE(SUM(hit_count), 0)
         FROM review_cache`,
		time.Now().UTC().UnixMilli(),
	)
	if err := row.Scan(&summary.Entries, &summary.Live, &summary.TotalHits); err != nil {
		return nil, fmt.Errorf("cache summary: %w", err)
	}
	return &summary, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCacheEntry(row rowScanner) (*CacheEntry, error) {
	var (
		entry      CacheEntry
		resultJSON string
		createdMS  int64
		expiresMS  int64
	)
	if err := row.Scan(
		&entry.Fingerprint,
		&entry.Language,
		&resultJSON,
		&createdMS,
		&expiresMS,
		&entry.HitCount,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(resultJSON), &entry.Result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	entry.CreatedAt = time.UnixMilli(createdMS).UTC()
	entry.ExpiresAt = time.UnixMilli(expiresMS).UTC()
	return &entry, nil
}
