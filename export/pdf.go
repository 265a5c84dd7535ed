package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"shawon-burger/models"

	"github.com/jung-kurt/gofpdf"
)

const reportTitle = "Shawon Burger Shop - Dashboard Report"

// ReportFilename is the download name for a report generated at t.
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("dashboard-report-%s.pdf", t.Format(dateLayout))
}

// WriteDashboardPDF renders the dashboard rollups and streams the document to w.
func WriteDashboardPDF(w io.Writer, stats *models.DashboardStats) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(reportTitle, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, reportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Report Period: "+periodLabel(stats.DateRange), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	heading(pdf, "Overview")
	line(pdf, fmt.Sprintf("Total Orders: %d", stats.TotalOrders))
	line(pdf, fmt.Sprintf("Period Orders: %d", stats.PeriodOrders))
	line(pdf, "Total Revenue: "+money(stats.TotalRevenue))
	line(pdf, "Period Revenue: "+money(stats.PeriodRevenue))
	line(pdf, fmt.Sprintf("Total Customers: %d", stats.UserCount))
	pdf.Ln(4)

	heading(pdf, "Order Status")
	statuses := make([]string, 0, len(stats.OrderStatusCounts))
	for status := range stats.OrderStatusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		line(pdf, fmt.Sprintf("%s: %d", status, stats.OrderStatusCounts[status]))
	}
	pdf.Ln(4)

	heading(pdf, "Popular Items")
	for _, item := range stats.PopularItems {
		line(pdf, fmt.Sprintf("%s: %d orders (%s)", item.Name, item.Quantity, money(item.Revenue)))
	}
	pdf.Ln(4)

	heading(pdf, "Daily Statistics")
	for _, day := range stats.DailyStats {
		line(pdf, fmt.Sprintf("%s: %d orders (%s)", day.Date, day.Orders, money(day.Revenue)))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render dashboard pdf: %w", err)
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
}

func line(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

// money uses "Tk" since the core PDF fonts have no taka glyph.
func money(v float64) string {
	return fmt.Sprintf("Tk %.2f", v)
}

func periodLabel(dateRange string) string {
	if dateRange == "" {
		return "Today"
	}
	return strings.ToUpper(dateRange[:1]) + dateRange[1:]
}
