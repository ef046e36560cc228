package model

import (
	"hotel/shared/model"
	"strings"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldName          = "name"
	FieldType          = "type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldIsAvailable   = "is_available"
	FieldDescription   = "description"
	FieldAmenities     = "amenities"
	FieldImages        = "images"
)

// AmenityPreviewSize is how many amenities a catalog card lists before "+N more".
const AmenityPreviewSize = 3

type Type string

const (
	TypeStandard     Type = "standard"
	TypeDeluxe       Type = "deluxe"
	TypeSuite        Type = "suite"
	TypePresidential Type = "presidential"
)

// TypeAny disables the type filter of the catalog.
const TypeAny = "any"

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypePresidential:
		return true
	}

	return false
}

func (t Type) Label() string {
	switch t {
	case TypeStandard:
		return "Standard Room"
	case TypeDeluxe:
		return "Deluxe Room"
	case TypeSuite:
		return "Suite"
	case TypePresidential:
		return "Presidential Suite"
	}

	return string(t)
}

type AmenityCategory string

const (
	AmenityWifi            AmenityCategory = "wifi"
	AmenityAirConditioning AmenityCategory = "air_conditioning"
	AmenityParking         AmenityCategory = "parking"
	AmenityOther           AmenityCategory = "other"
)

// CategorizeAmenity maps a free text amenity label to an icon category.
func CategorizeAmenity(label string) AmenityCategory {
	lower := strings.ToLower(label)

	switch {
	case strings.Contains(lower, "wifi"), strings.Contains(lower, "wi-fi"):
		return AmenityWifi
	case strings.Contains(lower, "air"), lower == "ac":
		return AmenityAirConditioning
	case strings.Contains(lower, "parking"), strings.Contains(lower, "parkir"):
		return AmenityParking
	}

	return AmenityOther
}

type Room struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Type          Type           `db:"type"`
	PricePerNight int64          `db:"price_per_night"`
	Capacity      int            `db:"capacity"`
	IsAvailable   bool           `db:"is_available"`
	Description   string         `db:"description"`
	Amenities     pq.StringArray `db:"amenities"`
	Images        pq.StringArray `db:"images"`
	model.Metadata
}

func (r Room) CanAccommodate(guests int) bool {
	return r.Capacity >= guests
}

// AmenityPreview returns the first amenities shown on a card and how many are left out.
func (r Room) AmenityPreview() ([]string, int) {
	if len(r.Amenities) <= AmenityPreviewSize {
		return r.Amenities, 0
	}

	return r.Amenities[:AmenityPreviewSize], len(r.Amenities) - AmenityPreviewSize
}
