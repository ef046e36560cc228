package model

import (
	"bytes"
	_ "embed"
	"fmt"
	htmlTemplate "html/template"
	"strconv"
	"strings"
	textTemplate "text/template"

	"hotel/internal/domains/booking/event"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/shared/currency"
)

var (
	//go:embed templates/booking.html
	bookingHTML string
	//go:embed templates/booking.txt
	bookingText string

	htmlTmpl = htmlTemplate.Must(htmlTemplate.New("booking.html").Parse(bookingHTML))
	textTmpl = textTemplate.Must(textTemplate.New("booking.txt").Parse(bookingText))
)

// Notice is the rendered content of one guest email.
type Notice struct {
	HotelName     string
	Headline      string
	GuestName     string
	BookingID     string
	RoomName      string
	CheckIn       string
	CheckOut      string
	Nights        string
	Guests        string
	Total         string
	PaymentMethod string
	PaymentStatus string
	Status        string
}

// Message is the subject and opening line for one kind of booking event.
type Message struct {
	Subject  string
	Headline string
}

var messages = map[event.Type]Message{
	event.TypeCreated: {
		Subject:  "Your booking is confirmed",
		Headline: "Thank you for your reservation. Your stay is confirmed with the details below.",
	},
	event.TypeCancelled: {
		Subject:  "Your booking has been cancelled",
		Headline: "Your booking below has been cancelled. Contact the front desk if this is unexpected.",
	},
	event.TypeRestored: {
		Subject:  "Your booking has been reinstated",
		Headline: "Your previously cancelled booking is confirmed again.",
	},
	event.TypePaymentUpdated: {
		Subject:  "Payment update for your booking",
		Headline: "The payment status of your booking has changed.",
	},
}

// MessageFor returns false for events guests are not mailed about, such as deletions.
func MessageFor(eventType event.Type) (Message, bool) {
	message, ok := messages[eventType]

	return message, ok
}

func NewNotice(hotelName, headline string, evt event.Event) Notice {
	return Notice{
		HotelName:     hotelName,
		Headline:      headline,
		GuestName:     evt.GuestName,
		BookingID:     evt.BookingID,
		RoomName:      evt.RoomName,
		CheckIn:       evt.CheckInDate,
		CheckOut:      evt.CheckOutDate,
		Nights:        strconv.Itoa(evt.Nights),
		Guests:        strconv.Itoa(evt.GuestsCount),
		Total:         currency.FormatIDR(evt.TotalPrice),
		PaymentMethod: bookingModel.PaymentMethod(evt.PaymentMethod).Label(),
		PaymentStatus: titleCase(evt.PaymentStatus),
		Status:        titleCase(evt.BookingStatus),
	}
}

func (n Notice) Render() (html, text string, err error) {
	var htmlBuf, textBuf bytes.Buffer

	if err = htmlTmpl.Execute(&htmlBuf, n); err != nil {
		return "", "", fmt.Errorf("render html notice: %w", err)
	}

	if err = textTmpl.Execute(&textBuf, n); err != nil {
		return "", "", fmt.Errorf("render text notice: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

func titleCase(value string) string {
	if value == "" {
		return value
	}

	return strings.ToUpper(value[:1]) + value[1:]
}
