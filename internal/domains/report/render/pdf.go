package render

import (
	"fmt"
	"io"
	"strconv"

	dashboardDto "hotel/internal/domains/dashboard/model/dto"
	"hotel/internal/domains/report/model"
	"hotel/shared/currency"
	"hotel/shared/timezone"

	"github.com/go-pdf/fpdf"
)

const (
	alignLeft   = "L"
	alignCenter = "C"
	alignRight  = "R"

	pageMargin   = 10.0
	footerHeight = 12.0
	rowHeight    = 7.0
	tableWidth   = 277.0
	fontFamily   = "Helvetica"
)

type pdfColumn struct {
	title string
	width float64
	align string
	value func(row model.Row) string
}

// Columns of the printed table. Widths add up to tableWidth.
var pdfColumns = []pdfColumn{
	{title: "Booked", width: 22, align: alignLeft, value: func(r model.Row) string { return r.BookingDate }},
	{title: "Guest", width: 42, align: alignLeft, value: func(r model.Row) string { return r.GuestName }},
	{title: "Room", width: 40, align: alignLeft, value: func(r model.Row) string { return r.RoomName }},
	{title: "Check-in", width: 22, align: alignCenter, value: func(r model.Row) string { return r.CheckIn }},
	{title: "Check-out", width: 22, align: alignCenter, value: func(r model.Row) string { return r.CheckOut }},
	{title: "Nights", width: 14, align: alignRight, value: func(r model.Row) string { return strconv.Itoa(r.Nights) }},
	{title: "Guests", width: 14, align: alignRight, value: func(r model.Row) string { return strconv.Itoa(r.Guests) }},
	{title: "Total", width: 30, align: alignRight, value: func(r model.Row) string { return currency.FormatIDR(r.TotalPrice) }},
	{title: "Method", width: 27, align: alignLeft, value: func(r model.Row) string { return r.PaymentMethod }},
	{title: "Payment", width: 22, align: alignCenter, value: func(r model.Row) string { return r.PaymentStatus }},
	{title: "Status", width: 22, align: alignCenter, value: func(r model.Row) string { return r.BookingStatus }},
}

type PDFOptions struct {
	RowsPerPage int
	Compress    bool
}

// PDF renders the report as an A4 landscape document. The table header is repeated on
// every page and each page carries a "Page N of M" footer.
func PDF(w io.Writer, report model.Report, opts PDFOptions) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, footerHeight)
	pdf.SetCompression(opts.Compress)
	pdf.SetTitle(report.HotelName+" Booking Report", true)
	pdf.SetCreator(report.HotelName, true)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-footerHeight)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, alignCenter, false, 0, "")
	})

	pdf.AddPage()
	writeTitle(pdf, tr, report)
	writeSummary(pdf, tr, report)
	writeTableHeader(pdf, tr)

	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - footerHeight - rowHeight
	rowsOnPage := 0

	for i, row := range report.Rows {
		if pdf.GetY() > limit || (opts.RowsPerPage > 0 && rowsOnPage == opts.RowsPerPage) {
			pdf.AddPage()
			writeTableHeader(pdf, tr)

			rowsOnPage = 0
		}

		writeTableRow(pdf, tr, row, i%2 == 1)

		rowsOnPage++
	}

	if len(report.Rows) == 0 {
		pdf.SetFont(fontFamily, "I", 9)
		pdf.CellFormat(0, rowHeight, "No bookings yet.", "1", 1, alignCenter, false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	return nil
}

func writeTitle(pdf *fpdf.Fpdf, tr func(string) string, report model.Report) {
	pdf.SetFont(fontFamily, "B", 18)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 10, tr(report.HotelName), "", 1, alignLeft, false, 0, "")

	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(0, 7, "Booking & Revenue Report", "", 1, alignLeft, false, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 6, "Report date: "+timezone.Format(report.GeneratedAt, "02 January 2006 15:04"), "", 1, alignLeft, false, 0, "")
	pdf.Ln(3)
}

func writeSummary(pdf *fpdf.Fpdf, tr func(string) string, report model.Report) {
	stats := report.Stats
	items := [][2]string{
		{"Total bookings", strconv.Itoa(stats.TotalBookings)},
		{"Revenue (completed)", currency.FormatIDR(stats.TotalRevenue)},
		{"Occupancy", dashboardDto.FormatPercent(stats.OccupancyRate)},
		{"Available rooms", fmt.Sprintf("%d of %d", stats.AvailableRooms, stats.TotalRooms)},
	}

	width := tableWidth / float64(len(items))

	pdf.SetFillColor(241, 243, 245)
	pdf.SetTextColor(108, 117, 125)
	pdf.SetFont(fontFamily, "", 8)

	for _, item := range items {
		pdf.CellFormat(width, 6, tr(item[0]), "LTR", 0, alignLeft, true, 0, "")
	}

	pdf.Ln(-1)

	pdf.SetTextColor(33, 37, 41)
	pdf.SetFont(fontFamily, "B", 12)

	for _, item := range items {
		pdf.CellFormat(width, 9, tr(item[1]), "LBR", 0, alignLeft, true, 0, "")
	}

	pdf.Ln(-1)
	pdf.Ln(5)
}

func writeTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(52, 58, 64)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(222, 226, 230)

	for _, column := range pdfColumns {
		pdf.CellFormat(column.width, rowHeight+1, tr(column.title), "1", 0, column.align, true, 0, "")
	}

	pdf.Ln(-1)
}

func writeTableRow(pdf *fpdf.Fpdf, tr func(string) string, row model.Row, shaded bool) {
	pdf.SetFont(fontFamily, "", 8)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetFillColor(248, 249, 250)

	for _, column := range pdfColumns {
		text := fit(pdf, tr(column.value(row)), column.width-2)
		pdf.CellFormat(column.width, rowHeight, text, "1", 0, column.align, shaded, 0, "")
	}

	pdf.Ln(-1)
}

// fit shortens text with an ellipsis until it fits the cell.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}

	// translated text is single byte cp1252
	for len(text) > 0 && pdf.GetStringWidth(text+"...") > width {
		text = text[:len(text)-1]
	}

	return text + "..."
}
