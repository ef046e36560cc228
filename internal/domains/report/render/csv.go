package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel/internal/domains/report/model"
	"hotel/shared/currency"
)

const (
	byteOrderMark = "\uFEFF"
	lineEnding    = "\r\n"
)

var csvHeader = []string{
	"Booking Date",
	"Guest Name",
	"Email",
	"Phone",
	"Room Name",
	"Room Type",
	"Check-in",
	"Check-out",
	"Nights",
	"Guests",
	"Price per Night",
	"Total Price",
	"Payment Method",
	"Payment Status",
	"Booking Status",
	"Special Requests",
}

// CSV writes the report for spreadsheets: a UTF-8 byte order mark, every field quoted,
// CRLF line endings and a closing totals row.
func CSV(w io.Writer, report model.Report) error {
	buf := bufio.NewWriter(w)

	if _, err := buf.WriteString(byteOrderMark); err != nil {
		return fmt.Errorf("write byte order mark: %w", err)
	}

	if err := writeRecord(buf, csvHeader); err != nil {
		return err
	}

	for _, row := range report.Rows {
		if err := writeRecord(buf, csvRecord(row)); err != nil {
			return err
		}
	}

	if err := writeRecord(buf, csvTotals(report)); err != nil {
		return err
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func csvRecord(row model.Row) []string {
	return []string{
		row.BookingDate,
		row.GuestName,
		row.GuestEmail,
		row.GuestPhone,
		row.RoomName,
		row.RoomType,
		row.CheckIn,
		row.CheckOut,
		strconv.Itoa(row.Nights),
		strconv.Itoa(row.Guests),
		currency.FormatIDR(row.PricePerNight),
		currency.FormatIDR(row.TotalPrice),
		row.PaymentMethod,
		row.PaymentStatus,
		row.BookingStatus,
		row.SpecialRequests,
	}
}

// csvTotals puts the booking count under the first column and revenue under Total Price.
func csvTotals(report model.Report) []string {
	record := make([]string, len(csvHeader))
	record[0] = "TOTAL"
	record[1] = fmt.Sprintf("%d bookings", report.Stats.TotalBookings)
	record[10] = "Revenue (completed)"
	record[11] = currency.FormatIDR(report.Stats.TotalRevenue)

	return record
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return fmt.Errorf("write csv separator: %w", err)
			}
		}

		if _, err := w.WriteString(quote(field)); err != nil {
			return fmt.Errorf("write csv field: %w", err)
		}
	}

	if _, err := w.WriteString(lineEnding); err != nil {
		return fmt.Errorf("write csv line ending: %w", err)
	}

	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
