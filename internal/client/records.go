package client

import (
	"pms/internal/codes"
	"pms/internal/domain/goals"
	"pms/internal/domain/weekly"
	"pms/internal/tableview"
)

// WeekDetailsRow is the display shape of one week: backend ws_*/week_*
// names mapped to the stable short view names the tables key on. Missing
// backend fields stay at their zero values.
type WeekDetailsRow struct {
	WeekID      int
	WeekNumber  int
	StartDate   string
	EndDate     string
	WD          int
	H           int
	L           int
	WFH         int
	WFO         int
	ED          int
	Efforts     float64
	Status      string
	SubmittedOn string
}

// WeekDetails maps a week listing to view rows, decoding the status code
// to its display label.
func WeekDetails(listing []weekly.WeekListing) []WeekDetailsRow {
	rows := make([]WeekDetailsRow, len(listing))
	for i, w := range listing {
		rows[i] = WeekDetailsRow{
			WeekID:      w.WeekID,
			WeekNumber:  w.WeekNumber,
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
			WD:          w.WorkingDays,
			H:           w.Holidays,
			L:           w.Leaves,
			WFH:         w.WFH,
			WFO:         w.WFO,
			ED:          w.ExtraDays,
			Efforts:     w.Efforts,
			Status:      codes.Status.CodeToLabel(w.Status),
			SubmittedOn: w.SubmittedOn,
		}
	}
	return rows
}

func (r WeekDetailsRow) Record() tableview.Record {
	return tableview.Record{
		"WeekID":      r.WeekID,
		"WeekNumber":  r.WeekNumber,
		"StartDate":   r.StartDate,
		"EndDate":     r.EndDate,
		"WD":          r.WD,
		"H":           r.H,
		"L":           r.L,
		"WFH":         r.WFH,
		"WFO":         r.WFO,
		"ED":          r.ED,
		"Efforts":     r.Efforts,
		"Status":      r.Status,
		"SubmittedOn": r.SubmittedOn,
	}
}

// GoalRow is the display shape of one weekly goal row.
type GoalRow struct {
	RecID      int
	GoalID     string
	Title      string
	WeekNumber int
	Effort     float64
	Status     string
	OwnRating  string
	Target     string
	Actions    string
}

func GoalRows(list []goals.Goal) []GoalRow {
	rows := make([]GoalRow, len(list))
	for i, g := range list {
		rows[i] = GoalRow{
			RecID:      g.RecID,
			GoalID:     g.GoalID,
			Title:      g.Title,
			WeekNumber: g.WeekNumber,
			Effort:     g.Effort,
			Status:     codes.Status.CodeToLabel(g.Status),
			OwnRating:  codes.Rating.CodeToLabel(g.OwnRating),
			Target:     g.Target,
			Actions:    g.ActionPerformed,
		}
	}
	return rows
}

func (r GoalRow) Record() tableview.Record {
	return tableview.Record{
		"RecID":      r.RecID,
		"GoalID":     r.GoalID,
		"Title":      r.Title,
		"WeekNumber": r.WeekNumber,
		"Effort":     r.Effort,
		"Status":     r.Status,
		"OwnRating":  r.OwnRating,
		"Target":     r.Target,
		"Actions":    r.Actions,
	}
}

// Records converts any row slice with a Record method to tableview input.
func Records[T interface{ Record() tableview.Record }](rows []T) []tableview.Record {
	out := make([]tableview.Record, len(rows))
	for i, r := range rows {
		out[i] = r.Record()
	}
	return out
}
