// Package report renders one employee's weekly report as a PDF: the week
// summary header, the effort counters, and the goal rows for that week.
package report

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pms/internal/codes"
	"pms/internal/domain/employee"
	"pms/internal/domain/goals"
	"pms/internal/domain/weekly"
)

// WeeklyReport is everything the PDF needs, fetched by the caller.
type WeeklyReport struct {
	Employee employee.Employee
	Week     weekly.WeekSummary
	Goals    []goals.Goal
}

// Render writes the report to filePath.
func Render(rep WeeklyReport, filePath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Weekly Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", rep.Employee.FullName, rep.Employee.EmpCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Week %d: %s to %s", rep.Week.WeekNumber, rep.Week.StartDate, rep.Week.EndDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", codes.Status.CodeToLabel(rep.Week.Status)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Week Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Work days: %d   WFH: %d   WFO: %d   Leaves: %d   Holidays: %d   Extra days: %d",
		rep.Week.WorkDays, rep.Week.WFH, rep.Week.WFO, rep.Week.Leaves, rep.Week.Holidays, rep.Week.ExtraDays))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Efforts: %.1f of %.1f available hours", rep.Week.Efforts, rep.Week.AvailableHours))
	pdf.Ln(9)

	writeParagraph(pdf, "Successes", rep.Week.Success)
	writeParagraph(pdf, "Challenges", rep.Week.Challenges)
	writeParagraph(pdf, "Unfinished Tasks", rep.Week.UnfinishedTasks)
	writeParagraph(pdf, "Next Actions", rep.Week.NextActions)

	if len(rep.Goals) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Goals")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, g := range rep.Goals {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s  %s  (%s, %.1fh, rating %s)",
				g.GoalID, g.Title,
				codes.Status.CodeToLabel(g.Status), g.Effort,
				codes.Rating.CodeToLabel(g.OwnRating)), "", "L", false)
			if strings.TrimSpace(g.ActionPerformed) != "" {
				pdf.MultiCell(0, 6, "  Actions: "+g.ActionPerformed, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	return pdf.OutputFileAndClose(filePath)
}

func writeParagraph(pdf *gofpdf.Fpdf, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, body, "", "L", false)
	pdf.Ln(2)
}
