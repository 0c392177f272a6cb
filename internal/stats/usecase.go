package stats

import "context"

type UseCase interface {
	// Report computes statistics over the whole ledger, rows sorted as asked.
	Report(ctx context.Context, by SortBy, order Order) (*Report, error)
}
