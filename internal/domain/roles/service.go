package roles

import (
	"context"
	"fmt"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Assignments returns the employee's role rows. An empty flag behaves like
// FlagAll, which is how the legacy roles view calls it.
func (s *Service) Assignments(ctx context.Context, empID int, flag string) ([]Assignment, error) {
	switch flag {
	case "", FlagAll:
		return s.Store.Assignments(ctx, empID, false)
	case FlagEditable:
		return s.Store.Assignments(ctx, empID, true)
	default:
		return nil, fmt.Errorf("unknown roles flag %q", flag)
	}
}

// SheetFor bundles flagged assignments with the division list for the edit
// sheet.
func (s *Service) SheetFor(ctx context.Context, empID int, flag string) (Sheet, error) {
	assignments, err := s.Assignments(ctx, empID, flag)
	if err != nil {
		return Sheet{}, err
	}
	divisions, err := s.Store.Divisions(ctx)
	if err != nil {
		return Sheet{}, err
	}
	return Sheet{Roles: assignments, Divisions: divisions}, nil
}
