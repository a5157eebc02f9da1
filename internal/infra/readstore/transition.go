package readstore

import (
	"context"
	"time"

	"signage-sync/internal/infra"
	"signage-sync/internal/infra/db"
	"signage-sync/internal/usecase/lifecycle"

	"github.com/jackc/pgx/v5"
)

const (
	promotionsEndedSQL = `
SELECT id, store_id, end_time
FROM promotions
WHERE is_active AND end_time > $1 AND end_time <= $2`

	promotionsStartedSQL = `
SELECT id, store_id, start_time
FROM promotions
WHERE start_time > $1 AND start_time <= $2`
)

// PromotionTransitionStore finds promotions whose window opened or closed in
// a half-open interval (from, to].
type PromotionTransitionStore struct {
	db db.DBTX
}

func NewPromotionTransitionStore(q db.DBTX) *PromotionTransitionStore {
	return &PromotionTransitionStore{db: q}
}

func (r *PromotionTransitionStore) EndedBetween(ctx context.Context, from, to time.Time) ([]lifecycle.Transition, error) {
	return r.find(ctx, promotionsEndedSQL, lifecycle.Ended, from, to)
}

func (r *PromotionTransitionStore) StartedBetween(ctx context.Context, from, to time.Time) ([]lifecycle.Transition, error) {
	return r.find(ctx, promotionsStartedSQL, lifecycle.Started, from, to)
}

func (r *PromotionTransitionStore) find(ctx context.Context, sql string, kind lifecycle.TransitionKind, from, to time.Time) ([]lifecycle.Transition, error) {
	rows, err := r.db.Query(ctx, sql, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find promotion transitions", err)
	}
	return collect(rows, "failed to find promotion transitions", func(row pgx.Rows) (lifecycle.Transition, error) {
		t := lifecycle.Transition{Kind: kind}
		err := row.Scan(&t.PromotionID, &t.StoreID, &t.At)
		return t, err
	})
}
