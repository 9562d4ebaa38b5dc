package weekly

import "context"

type StoreAPI interface {
	ListSummaries(ctx context.Context, empID int) ([]WeekSummary, error)
	Stats(ctx context.Context, empID int) (WeekStats, bool, error)
	WeekListing(ctx context.Context, empID, limit int) ([]WeekListing, error)
	FreshWeek(ctx context.Context, empID, weekID int) (WeekSummary, error)
	GetRow(ctx context.Context, key RowKey) (WeekSummary, error)
	UpsertRow(ctx context.Context, row WeekSummary) error
}
