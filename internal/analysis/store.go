package analysis

import "context"

// ResultStore persists analysis records. Put is a single-attempt,
// full-record upsert; QueryByBranch is the auxiliary verification read path,
// most-recent-first, bounded by limit.
type ResultStore interface {
	Put(ctx context.Context, record Record) error
	QueryByBranch(ctx context.Context, branch string, limit int32) ([]Record, error)
}
