// Package pricing holds the single stay pricing model: nights times the nightly rate.
package pricing

import (
	"errors"
	"math"
	"time"

	"hotel/shared/constant"
	"hotel/shared/model"
)

var ErrInvalidStay = errors.New("check-out date must be after check-in date")

// Nights is ceil((checkOut - checkIn) / 24h). Non positive spans return ErrInvalidStay.
func Nights(checkIn, checkOut time.Time) (int, error) {
	span := checkOut.Sub(checkIn)
	if span <= 0 {
		return 0, ErrInvalidStay
	}

	return int(math.Ceil(span.Hours() / constant.HoursPerDay)), nil
}

func Total(nights int, pricePerNight int64) int64 {
	if nights <= 0 || pricePerNight <= 0 {
		return 0
	}

	return int64(nights) * pricePerNight
}

// Quote parses both dates and prices the stay.
func Quote(checkIn, checkOut string, pricePerNight int64) (nights int, total int64, err error) {
	in, err := model.ParseDate(checkIn)
	if err != nil {
		return 0, 0, err //nolint:wrapcheck
	}

	out, err := model.ParseDate(checkOut)
	if err != nil {
		return 0, 0, err //nolint:wrapcheck
	}

	nights, err = Nights(in.Time, out.Time)
	if err != nil {
		return 0, 0, err
	}

	return nights, Total(nights, pricePerNight), nil
}
