package employee

import "context"

type StoreAPI interface {
	ByCode(ctx context.Context, empCode string) (Employee, error)
	ByUsername(ctx context.Context, username string) (Employee, error)
	TouchLastLogin(ctx context.Context, empID int, when string) error
}
