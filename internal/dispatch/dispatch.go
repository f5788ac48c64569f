package dispatch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"reviewd/internal/config"
	"reviewd/internal/logging"
	"reviewd/internal/review"
	"reviewd/internal/services"
	"reviewd/internal/store"
)

// hitRecordTimeout bounds the detached hit-count update so a stalled write
// cannot leak a goroutine forever.
const hitRecordTimeout = 5 * time.Second

// Reviewer is the external model contract the dispatcher depends on.
type Reviewer interface {
	Review(ctx context.Context, code, language string) (*review.Result, error)
}

// Request is one review submission.
type Request struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	SessionID string `json:"sessionId"`
}

// Response carries the review outcome back to the API layer.
type Response struct {
	RecordID  string        `json:"id"`
	SessionID string        `json:"sessionId"`
	Language  string        `json:"language"`
	Cached    bool          `json:"cached"`
	Result    review.Result `json:"results"`
	Timestamp time.Time     `json:"timestamp"`
}

// Dispatcher coordinates the cache, the external reviewer, and the history
// log for each submission.
type Dispatcher struct {
	store        *store.Store
	reviewer     Reviewer
	cacheEnabled bool
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// New constructs a dispatcher wired to the given store and reviewer.
func New(st *store.Store, rev Reviewer, cfg *config.Config, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		store:    st,
		reviewer: rev,
		logger:   logging.NewComponentLogger(logger, "dispatch"),
	}
	if cfg != nil {
		d.cacheEnabled = cfg.Cache.Enabled
		d.cacheTTL = cfg.CacheTTL()
	}
	return d
}

// Review runs one submission through the workflow. A cache hit never calls
// the external model; a reviewer failure writes nothing and surfaces the
// error unchanged.
func (d *Dispatcher) Review(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	ctx = services.WithSessionID(ctx, req.SessionID)

	fingerprint := review.Fingerprint(req.Code, req.Language)
	logger := logging.WithContext(ctx, d.logger).With(
		logging.String(logging.FieldFingerprint, fingerprint),
		logging.String(logging.FieldLanguage, req.Language),
	)

	if d.cacheEnabled {
		entry, err := d.store.LookupCache(ctx, fingerprint, req.Language)
		if err != nil {
			logger.Warn("cache lookup failed, falling through to model", logging.Error(err))
		} else if entry != nil {
			return d.serveFromCache(ctx, logger, req, fingerprint, entry)
		}
	}

	result, err := d.reviewer.Review(ctx, req.Code, req.Language)
	if err != nil {
		logger.Error("model review failed", logging.Error(err))
		return nil, err
	}

	if d.cacheEnabled {
		if _, err := d.store.SaveCache(ctx, fingerprint, req.Language, result, d.cacheTTL); err != nil {
			logger.Warn("cache write failed", logging.Error(err))
		}
	}

	record, err := d.store.InsertReview(ctx, &store.HistoryRecord{
		SessionID:   req.SessionID,
		Code:        req.Code,
		Language:    req.Language,
		Result:      *result,
		Fingerprint: fingerprint,
		FromCache:   false,
	})
	if err != nil {
		return nil, services.Wrap(nil, "dispatch", "review", "record history", err)
	}

	logger.Info("review completed", logging.Bool("cached", false))
	return responseFromRecord(record), nil
}

func (d *Dispatcher) serveFromCache(ctx context.Context, logger *slog.Logger, req Request, fingerprint string, entry *store.CacheEntry) (*Response, error) {
	// The hit counter is bookkeeping; the response must not wait on it or
	// fail with it.
	go func() {
		hitCtx, cancel := context.WithTimeout(context.Background(), hitRecordTimeout)
		defer cancel()
		if err := d.store.RecordCacheHit(hitCtx, fingerprint); err != nil {
			logger.Warn("cache hit count update failed", logging.Error(err))
		}
	}()

	record, err := d.store.InsertReview(ctx, &store.HistoryRecord{
		SessionID:   req.SessionID,
		Code:        req.Code,
		Language:    req.Language,
		Result:      entry.Result,
		Fingerprint: fingerprint,
		FromCache:   true,
	})
	if err != nil {
		return nil, services.Wrap(nil, "dispatch", "review", "record history", err)
	}

	logger.Info("review served from cache", logging.Bool("cached", true))
	return responseFromRecord(record), nil
}

// HistoryBySession lists a session's records newest first without code
// bodies.
func (d *Dispatcher) HistoryBySession(ctx context.Context, sessionID string, limit int) ([]*store.HistoryRecord, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, services.Wrap(services.ErrValidation, "dispatch", "history", "session id required", nil)
	}
	records, err := d.store.ReviewsBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, services.Wrap(nil, "dispatch", "history", "list session", err)
	}
	return records, nil
}

// HistoryByID fetches one full record, code included.
func (d *Dispatcher) HistoryByID(ctx context.Context, id string) (*store.HistoryRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, services.Wrap(services.ErrValidation, "dispatch", "history", "record id required", nil)
	}
	record, err := d.store.ReviewByID(ctx, id)
	if err != nil {
		return nil, services.Wrap(nil, "dispatch", "history", "fetch record", err)
	}
	if record == nil {
		return nil, services.Wrap(services.ErrNotFound, "dispatch", "history", "review "+id, nil)
	}
	return record, nil
}

// Stats aggregates review counts across all sessions.
func (d *Dispatcher) Stats(ctx context.Context) (*store.Stats, error) {
	stats, err := d.store.Stats(ctx)
	if err != nil {
		return nil, services.Wrap(nil, "dispatch", "stats", "aggregate", err)
	}
	return stats, nil
}

// CacheSummary reports cache occupancy for the status endpoint.
func (d *Dispatcher) CacheSummary(ctx context.Context) (*store.CacheSummary, error) {
	summary, err := d.store.CacheSummary(ctx)
	if err != nil {
		return nil, services.Wrap(nil, "dispatch", "status", "cache summary", err)
	}
	return summary, nil
}

// PruneExpiredCache removes dead cache rows and reports how many went.
func (d *Dispatcher) PruneExpiredCache(ctx context.Context) (int64, error) {
	removed, err := d.store.PruneExpiredCache(ctx)
	if err != nil {
		return 0, services.Wrap(nil, "dispatch", "prune", "delete expired", err)
	}
	if removed > 0 {
		d.logger.Info("pruned expired cache entries", logging.Int64("removed", removed))
	}
	return removed, nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.Code) == "" {
		return services.Wrap(services.ErrValidation, "dispatch", "review", "code required", nil)
	}
	if strings.TrimSpace(req.Language) == "" {
		return services.Wrap(services.ErrValidation, "dispatch", "review", "language required", nil)
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return services.Wrap(services.ErrValidation, "dispatch", "review", "session id required", nil)
	}
	return nil
}

func responseFromRecord(record *store.HistoryRecord) *Response {
	return &Response{
		RecordID:  record.ID,
		SessionID: record.SessionID,
		Language:  record.Language,
		Cached:    record.FromCache,
		Result:    record.Result,
		Timestamp: record.CreatedAt,
	}
}
