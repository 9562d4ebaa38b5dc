package goals

import (
	"context"
	"math"
	"strings"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// WeeklyGoals returns the goal rows for the employee (optionally limited to
// the given week numbers) plus the per-goal effort rollup.
func (s *Service) WeeklyGoals(ctx context.Context, empID int, weeks []int) (Page, error) {
	list, err := s.Store.ListByEmp(ctx, empID, weeks)
	if err != nil {
		return Page{}, err
	}
	return Page{Goals: list, GoalsSummary: Summarize(list)}, nil
}

func (s *Service) GetRow(ctx context.Context, recID int) (Goal, error) {
	return s.Store.GetRow(ctx, recID)
}

func (s *Service) SaveRow(ctx context.Context, row Goal) (int, error) {
	return s.Store.UpsertRow(ctx, row)
}

func (s *Service) Catalog(ctx context.Context, empID int) ([]CatalogEntry, error) {
	return s.Store.Catalog(ctx, empID)
}

// Summarize groups goal rows by trimmed goal id and rolls efforts up into
// the goal_es_* shape. Percentages are of the total effort across all goals,
// rounded to two decimals; a zero total yields zero percentages.
func Summarize(list []Goal) []Summary {
	var total float64
	for _, g := range list {
		total += g.Effort
	}

	order := []string{}
	byID := map[string]*Summary{}
	for _, g := range list {
		id := strings.TrimSpace(g.GoalID)
		entry, ok := byID[id]
		if !ok {
			entry = &Summary{
				EmpID:       g.EmpID,
				EmpCode:     g.EmpCode,
				GoalID:      id,
				Title:       g.Title,
				Description: g.Description,
			}
			byID[id] = entry
			order = append(order, id)
		}
		entry.Effort += g.Effort
	}

	summaries := make([]Summary, 0, len(order))
	for _, id := range order {
		entry := byID[id]
		if total > 0 {
			entry.EffortsPercentage = math.Round(entry.Effort/total*10000) / 100
		}
		summaries = append(summaries, *entry)
	}
	return summaries
}
