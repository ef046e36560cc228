package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/currency"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/pricing"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CatalogQuery struct {
	Type     string `json:"type"      validate:"omitempty,oneof=standard deluxe suite presidential any"`
	Guests   int    `json:"guests"    validate:"gte=0,lte=50"`
	CheckIn  string `json:"check_in"  validate:"omitempty,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
}

func (q *CatalogQuery) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	q.Type = query.Get(model.FieldType)
	q.CheckIn = query.Get("check_in")
	q.CheckOut = query.Get("check_out")

	if guests := query.Get("guests"); guests != constant.Empty {
		value, err := shared.ConvertStringToInt(guests)
		if err != nil {
			return failure.BadRequestFromString("guests must be a number") // nolint:wrapcheck
		}

		q.Guests = value
	}

	return nil
}

// HasStay reports whether both dates were given, so cards can carry a price estimate.
func (q CatalogQuery) HasStay() bool {
	return q.CheckIn != "" && q.CheckOut != ""
}

// TypeFilter reports the room type to filter on, or false when every type is wanted.
func (q CatalogQuery) TypeFilter() (model.Type, bool) {
	typ := strings.ToLower(strings.TrimSpace(q.Type))
	if typ == "" || typ == model.TypeAny {
		return "", false
	}

	return model.Type(typ), true
}

type CreateRoomRequest struct {
	Name          string                `json:"name"            validate:"required,max=100"`
	Type          model.Type            `json:"type"            validate:"required,enum"`
	PricePerNight int64                 `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int                   `json:"capacity"        validate:"required,gte=1,lte=20"`
	Description   string                `json:"description"     validate:"omitempty,max=2000"`
	Amenities     string                `json:"amenities"       validate:"omitempty,max=1000"`
	IsAvailable   *bool                 `json:"is_available"    validate:"omitempty"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
}

// Bind reads a multipart room form. The caller closes ImageFile when it is set.
func (c *CreateRoomRequest) Bind(r *http.Request) (err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return failure.BadRequest(err)
	}

	c.Name = r.FormValue(model.FieldName)
	c.Type = model.Type(r.FormValue(model.FieldType))
	c.Description = r.FormValue(model.FieldDescription)
	c.Amenities = r.FormValue(model.FieldAmenities)
	c.IsAvailable = shared.ConvertStringToBool(r.FormValue(model.FieldIsAvailable))

	if c.PricePerNight, err = formInt64(r, model.FieldPricePerNight); err != nil {
		return err
	}

	capacity, err := formInt64(r, model.FieldCapacity)
	if err != nil {
		return err
	}

	c.Capacity = int(capacity)
	c.ImageFile, c.Image, err = formImage(r)

	return err
}

func (c *CreateRoomRequest) ToModel(user string, imageURLs []string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	if imageURLs == nil {
		imageURLs = []string{}
	}

	return model.Room{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(c.Name),
		Type:          c.Type,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		IsAvailable:   available,
		Description:   c.Description,
		Amenities:     pq.StringArray(shared.SplitCommaList(c.Amenities)),
		Images:        pq.StringArray(imageURLs),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest carries an admin edit. Only non-empty fields are written.
type UpdateRoomRequest struct {
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Type          model.Type            `db:"type"            json:"type"            validate:"omitempty,enum"`
	PricePerNight *int64                `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,gte=1,lte=20"`
	Description   *string               `db:"description"     json:"description"     validate:"omitempty,max=2000"`
	Amenities     *string               `json:"amenities"     validate:"omitempty,max=1000"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
}

// Bind reads a multipart partial room form. Absent fields stay nil.
func (u *UpdateRoomRequest) Bind(r *http.Request) (err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return failure.BadRequest(err)
	}

	u.Name = r.FormValue(model.FieldName)
	u.Type = model.Type(r.FormValue(model.FieldType))

	if r.MultipartForm.Value[model.FieldDescription] != nil {
		description := r.FormValue(model.FieldDescription)
		u.Description = &description
	}

	if r.MultipartForm.Value[model.FieldAmenities] != nil {
		amenities := r.FormValue(model.FieldAmenities)
		u.Amenities = &amenities
	}

	if r.FormValue(model.FieldPricePerNight) != constant.Empty {
		price, err := formInt64(r, model.FieldPricePerNight)
		if err != nil {
			return err
		}

		u.PricePerNight = &price
	}

	if r.FormValue(model.FieldCapacity) != constant.Empty {
		capacity, err := formInt64(r, model.FieldCapacity)
		if err != nil {
			return err
		}

		value := int(capacity)
		u.Capacity = &value
	}

	u.ImageFile, u.Image, err = formImage(r)

	return err
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Name == "" && u.Type == "" && u.PricePerNight == nil && u.Capacity == nil &&
		u.Description == nil && u.Amenities == nil && u.Image == nil
}

// AmenityList parses the comma separated amenities, nil when the field was not sent.
func (u *UpdateRoomRequest) AmenityList() pq.StringArray {
	if u.Amenities == nil {
		return nil
	}

	return pq.StringArray(shared.SplitCommaList(*u.Amenities))
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	TypeLabel     string   `json:"type_label"`
	PricePerNight int64    `json:"price_per_night"`
	PriceLabel    string   `json:"price_label"`
	Capacity      int      `json:"capacity"`
	IsAvailable   bool     `json:"is_available"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = string(model.Type)
	r.TypeLabel = model.Type.Label()
	r.PricePerNight = model.PricePerNight
	r.PriceLabel = currency.FormatIDR(model.PricePerNight)
	r.Capacity = model.Capacity
	r.IsAvailable = model.IsAvailable
	r.Description = model.Description
	r.Amenities = nonNil(model.Amenities)
	r.Images = nonNil(model.Images)
	r.Metadata.FromModel(model.Metadata)
}

type AmenityResponse struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// CatalogRoomResponse is a room card of the public catalog.
type CatalogRoomResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	TypeLabel      string            `json:"type_label"`
	PricePerNight  int64             `json:"price_per_night"`
	PriceLabel     string            `json:"price_label"`
	Capacity       int               `json:"capacity"`
	CanAccommodate bool              `json:"can_accommodate"`
	Description    string            `json:"description"`
	Amenities      []AmenityResponse `json:"amenities"`
	AmenityPreview []string          `json:"amenity_preview"`
	MoreAmenities  int               `json:"more_amenities"`
	Images         []string          `json:"images"`
	Nights         *int              `json:"nights,omitempty"`
	EstimatedTotal *int64            `json:"estimated_total,omitempty"`
	EstimatedLabel string            `json:"estimated_total_label,omitempty"`
}

func (r *CatalogRoomResponse) FromModel(room model.Room, query CatalogQuery) {
	r.ID = room.ID
	r.Name = room.Name
	r.Type = string(room.Type)
	r.TypeLabel = room.Type.Label()
	r.PricePerNight = room.PricePerNight
	r.PriceLabel = currency.FormatIDR(room.PricePerNight)
	r.Capacity = room.Capacity
	r.CanAccommodate = room.CanAccommodate(query.Guests)
	r.Description = room.Description
	r.Images = nonNil(room.Images)

	r.Amenities = make([]AmenityResponse, len(room.Amenities))
	for i, amenity := range room.Amenities {
		r.Amenities[i] = AmenityResponse{
			Label:    amenity,
			Category: string(model.CategorizeAmenity(amenity)),
		}
	}

	preview, more := room.AmenityPreview()
	r.AmenityPreview = nonNil(preview)
	r.MoreAmenities = more

	if !query.HasStay() {
		return
	}

	nights, total, err := pricing.Quote(query.CheckIn, query.CheckOut, room.PricePerNight)
	if err != nil {
		return
	}

	r.Nights = &nights
	r.EstimatedTotal = &total
	r.EstimatedLabel = currency.FormatIDR(total)
}

type CatalogResponse struct {
	Rooms  []CatalogRoomResponse `json:"rooms"`
	Guests int                   `json:"guests"`
	Total  int                   `json:"total"`
}

func (r *CatalogResponse) FromModels(rooms []model.Room, query CatalogQuery) {
	r.Guests = query.Guests
	r.Total = len(rooms)

	r.Rooms = make([]CatalogRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room, query)
	}
}

func formInt64(r *http.Request, field string) (int64, error) {
	raw := r.FormValue(field)
	if raw == constant.Empty {
		return 0, nil
	}

	value, err := shared.ConvertStringToInt64(raw)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", field)) // nolint:wrapcheck
	}

	return value, nil
}

func formImage(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(constant.FormImage)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, failure.BadRequest(err)
	}

	return file, header, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
