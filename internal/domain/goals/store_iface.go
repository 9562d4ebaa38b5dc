package goals

import "context"

type StoreAPI interface {
	ListByEmp(ctx context.Context, empID int, weeks []int) ([]Goal, error)
	GetRow(ctx context.Context, recID int) (Goal, error)
	UpsertRow(ctx context.Context, row Goal) (int, error)
	Catalog(ctx context.Context, empID int) ([]CatalogEntry, error)
}
