package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryLimit caps session listings. Requests asking for more are
// clamped to this value.
const DefaultHistoryLimit = 50

// InsertReview appends an immutable history record and returns it with its
// assigned identifier. Records are never mutated or deleted afterwards.
func (s *Store) InsertReview(ctx context.Context, record *HistoryRecord) (*HistoryRecord, error) {
	if record == nil {
		return nil, errors.New("insert review: record required")
	}
	if record.SessionID == "" {
		return nil, errors.New("insert review: session id required")
	}

	payload, err := json.Marshal(record.Result)
	if err != nil {
		return nil, fmt.Errorf("insert review: marshal result: %w", err)
	}

	stored := *record
	stored.ID = uuid.NewString()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	_, err = s.execWithRetry(
		ctx,
		`INSERT INTO reviews (id, session_id, code, language, result_json, fingerprint, from_cache, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID,
		stored.SessionID,
		stored.Code,
		stored.Language,
		string(payload),
		stored.Fingerprint,
		boolToInt(stored.FromCache),
		stored.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &stored, nil
}

// ReviewsBySession lists a session's records newest first, capped at limit
// (DefaultHistoryLimit when limit is zero or out of range). The code column
// is omitted from the query; returned records carry an empty Code.
func (s *Store) ReviewsBySession(ctx context.Context, sessionID string, limit int) ([]*HistoryRecord, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, session_id, language, result_json, fingerprint, from_cache, created_at
         FROM reviews
         WHERE session_id = ?
         ORDER BY created_at DESC, id
         LIMIT ?`,
		sessionID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("reviews by session: %w", err)
	}
	defer rows.Close()

	var records []*HistoryRecord
	for rows.Next() {
		record, err := scanHistoryRecord(rows, false)
		if err != nil {
			return nil, fmt.Errorf("reviews by session: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ReviewByID fetches a single full record, code included. Returns nil when
// no record exists.
func (s *Store) ReviewByID(ctx context.Context, id string) (*HistoryRecord, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, session_id, code, language, result_json, fingerprint, from_cache, created_at
         FROM reviews
         WHERE id = ?`,
		id,
	)
	record, err := scanHistoryRecord(row, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("review by id: %w", err)
	}
	return record, nil
}

// Stats aggregates review counts overall and per language, languages sorted
// by count descending.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	ctx = ensureContext(ctx)

	var stats Stats
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM reviews`)
	if err := row.Scan(&stats.TotalReviews); err != nil {
		return nil, fmt.Errorf("stats: total count: %w", err)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT language, COUNT(1) AS count
         FROM reviews
         GROUP BY language
         ORDER BY count DESC, language`,
	)
	if err != nil {
		return nil, fmt.Errorf("stats: language counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry LanguageCount
		if err := rows.Scan(&entry.Language, &entry.Count); err != nil {
			return nil, fmt.Errorf("stats: scan language count: %w", err)
		}
		stats.Languages = append(stats.Languages, entry)
	}
	return &stats, rows.Err()
}

func scanHistoryRecord(row rowScanner, withCode bool) (*HistoryRecord, error) {
	var (
		record     HistoryRecord
		resultJSON string
		fromCache  int
		createdMS  int64
	)

	dest := []any{&record.ID, &record.SessionID}
	if withCode {
		dest = append(dest, &record.Code)
	}
	dest = append(dest, &record.Language, &resultJSON, &record.Fingerprint, &fromCache, &createdMS)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(resultJSON), &record.Result); err != nil {
		return nil, fmt.Errorf("decode stored result: %w", err)
	}
	record.FromCache = fromCache != 0
	record.CreatedAt = time.UnixMilli(createdMS).UTC()
	return &record, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
