package weekly

import (
	"context"
	"math"
	"sort"
	"time"
)

// ListingWeeks bounds the weeklisting endpoint; the dashboard shows the last
// 12 weeks.
const ListingWeeks = 12

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Summaries returns the employee's week summaries ordered for display
// (current month first, then newest first) together with aggregate stats.
func (s *Service) Summaries(ctx context.Context, empID int) (SummaryPage, error) {
	summaries, err := s.Store.ListSummaries(ctx, empID)
	if err != nil {
		return SummaryPage{}, err
	}

	now := time.Now()
	sort.SliceStable(summaries, func(i, j int) bool {
		return CompareStartDates(summaries[i].StartDate, summaries[j].StartDate, now) < 0
	})

	page := SummaryPage{WeekSummary: summaries}
	stats, ok, err := s.Store.Stats(ctx, empID)
	if err != nil {
		return SummaryPage{}, err
	}
	if ok {
		if stats.HoursAvailable > 0 {
			stats.ExtraHoursPct = math.Round(stats.ExtraHoursWorked/stats.HoursAvailable*10000) / 100
		}
		page.WeekStats = &stats
	}
	return page, nil
}

func (s *Service) WeekListing(ctx context.Context, empID int) ([]WeekListing, error) {
	return s.Store.WeekListing(ctx, empID, ListingWeeks)
}

func (s *Service) FreshWeek(ctx context.Context, empID, weekID int) (WeekSummary, error) {
	return s.Store.FreshWeek(ctx, empID, weekID)
}

func (s *Service) GetRow(ctx context.Context, key RowKey) (WeekSummary, error) {
	return s.Store.GetRow(ctx, key)
}

func (s *Service) SaveRow(ctx context.Context, row WeekSummary) error {
	if row.SubmittedOn == "" {
		row.SubmittedOn = time.Now().UTC().Format("2006-01-02")
	}
	if row.ActiveStatus == "" {
		row.ActiveStatus = "Y"
	}
	return s.Store.UpsertRow(ctx, row)
}

// CompareStartDates orders week start dates the way the dashboard does:
// weeks in the current calendar month come first, then everything falls back
// to start date descending. Unparsable dates sort last.
func CompareStartDates(a, b string, now time.Time) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}

	curA := ta.Month() == now.Month() && ta.Year() == now.Year()
	curB := tb.Month() == now.Month() && tb.Year() == now.Year()
	if curA != curB {
		if curA {
			return -1
		}
		return 1
	}
	switch {
	case ta.After(tb):
		return -1
	case ta.Before(tb):
		return 1
	}
	return 0
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
