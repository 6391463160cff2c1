package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"

	"github.com/phpdave11/gofpdf"
)

const (
	pageOrientation = "P"
	pageUnit        = "mm"
	pageSize        = "A4"

	rowHeight = 7.0
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type column struct {
	title string
	width float64
}

var summaryColumns = []column{
	{title: "Booking", width: 28},
	{title: "Room", width: 52},
	{title: "Date", width: 26},
	{title: "Start", width: 18},
	{title: "End", width: 18},
	{title: "Status", width: 24},
	{title: "Booked at", width: 24},
}

// PDFRenderer renders customer booking summaries as A4 documents.
type PDFRenderer struct {
	title string
	clock clock.Clock
}

func NewPDFRenderer(cfg config.Config, clk clock.Clock) *PDFRenderer {
	return &PDFRenderer{title: cfg.Report.Title, clock: clk}
}

// RenderCustomerSummary returns the document bytes and a download filename.
func (r *PDFRenderer) RenderCustomerSummary(s *queries.CustomerBookingSummary) ([]byte, string, error) {
	if s == nil {
		return nil, "", errs.New("customer summary is required")
	}

	pdf := gofpdf.New(pageOrientation, pageUnit, pageSize, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(r.title, true)
	pdf.SetCreator("hall-booking", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(r.title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, rowHeight, tr("Customer       : "+s.CustomerName))
	pdf.Ln(rowHeight)
	pdf.Cell(0, rowHeight, fmt.Sprintf("Total bookings : %d", s.TotalBookings))
	pdf.Ln(rowHeight)
	pdf.Cell(0, rowHeight, "Generated at   : "+r.clock.Now().UTC().Format("2006-01-02 15:04 MST"))
	pdf.Ln(rowHeight + 3)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range summaryColumns {
		pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, b := range s.Bookings {
		cells := []string{
			shortID(b.BookingID.String()),
			tr(b.RoomName),
			b.Date,
			b.StartTime,
			b.EndTime,
			b.Status,
			b.CreatedAt.UTC().Format("2006-01-02"),
		}
		for i, col := range summaryColumns {
			pdf.CellFormat(col.width, rowHeight, truncate(pdf, cells[i], col.width-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", errs.Wrap(err, "render customer report")
	}

	return buf.Bytes(), Filename(s.CustomerName), nil
}

// Filename derives a download-safe filename from a customer name.
func Filename(customerName string) string {
	part := strings.Trim(unsafeFilenameChars.ReplaceAllString(customerName, "_"), "_")
	if part == "" {
		part = "customer"
	}
	return fmt.Sprintf("bookings_%s.pdf", part)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s until it fits into width at the current font.
func truncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	for len(s) > 0 && pdf.GetStringWidth(s+ellipsis) > width {
		s = s[:len(s)-1]
	}
	return s + ellipsis
}
