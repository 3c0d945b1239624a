package leave

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WriteLetterPDF renders a leave request as a formal letter document.
func WriteLetterPDF(w io.Writer, request LeaveRequest, now time.Time) error {
	days, err := TotalDays(request.StartDate, request.EndDate)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Request Letter")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", now.Format("02-Jan-2006")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", request.EmployeeName, request.EmployeeNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave type: %s", request.LeaveType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s (%d days)",
		request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), days))
	pdf.Ln(7)
	if request.Team != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Team: %s, Project: %s", request.Team, request.Project))
		pdf.Ln(7)
	}
	if request.TeamLeaderName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Team leader: %s (%s)", request.TeamLeaderName, request.TeamLeaderMobile))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", request.Status))
	pdf.Ln(10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Reason: %s", request.Reason), "", "L", false)

	return pdf.Output(w)
}
