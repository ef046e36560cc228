package dto_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deluxe() model.Room {
	return model.Room{
		ID:            "room-1",
		Name:          "Garden Deluxe",
		Type:          model.TypeDeluxe,
		PricePerNight: 235000,
		Capacity:      2,
		IsAvailable:   true,
		Amenities:     pq.StringArray{"Free WiFi", "AC", "Parking", "Mini Bar"},
	}
}

func TestCatalogQuery_TypeFilter(t *testing.T) {
	tests := []struct {
		name   string
		query  dto.CatalogQuery
		want   model.Type
		wantOK bool
	}{
		{name: "empty", query: dto.CatalogQuery{}},
		{name: "any", query: dto.CatalogQuery{Type: "any"}},
		{name: "suite", query: dto.CatalogQuery{Type: "suite"}, want: model.TypeSuite, wantOK: true},
		{name: "mixed case", query: dto.CatalogQuery{Type: " Deluxe "}, want: model.TypeDeluxe, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.query.TypeFilter()

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogQuery_FromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms?type=suite&guests=3&check_in=2024-06-01&check_out=2024-06-03", nil)

	var query dto.CatalogQuery

	require.NoError(t, query.FromRequest(req))
	assert.Equal(t, dto.CatalogQuery{Type: "suite", Guests: 3, CheckIn: "2024-06-01", CheckOut: "2024-06-03"}, query)

	req = httptest.NewRequest(http.MethodGet, "/v1/rooms?guests=two", nil)

	assert.EqualError(t, query.FromRequest(req), "guests must be a number")
}

func TestCatalogRoomResponse_FromModel(t *testing.T) {
	var res dto.CatalogRoomResponse

	res.FromModel(deluxe(), dto.CatalogQuery{Guests: 3})

	assert.Equal(t, "Deluxe Room", res.TypeLabel)
	assert.Equal(t, "Rp 235.000", res.PriceLabel)
	assert.False(t, res.CanAccommodate)
	assert.Equal(t, []string{"Free WiFi", "AC", "Parking"}, res.AmenityPreview)
	assert.Equal(t, 1, res.MoreAmenities)
	assert.Equal(t, string(model.AmenityWifi), res.Amenities[0].Category)
	assert.Equal(t, string(model.AmenityOther), res.Amenities[3].Category)
	assert.Empty(t, res.Images)
	assert.Nil(t, res.Nights)
	assert.Nil(t, res.EstimatedTotal)
}

func TestCatalogRoomResponse_FromModelWithStay(t *testing.T) {
	var res dto.CatalogRoomResponse

	res.FromModel(deluxe(), dto.CatalogQuery{Guests: 2, CheckIn: "2024-06-01", CheckOut: "2024-06-03"})

	require.NotNil(t, res.Nights)
	require.NotNil(t, res.EstimatedTotal)
	assert.True(t, res.CanAccommodate)
	assert.Equal(t, 2, *res.Nights)
	assert.Equal(t, int64(470000), *res.EstimatedTotal)
	assert.Equal(t, "Rp 470.000", res.EstimatedLabel)
}

func TestCatalogRoomResponse_FromModelWithReversedStay(t *testing.T) {
	var res dto.CatalogRoomResponse

	res.FromModel(deluxe(), dto.CatalogQuery{CheckIn: "2024-06-03", CheckOut: "2024-06-01"})

	assert.Nil(t, res.Nights)
	assert.Nil(t, res.EstimatedTotal)
}

func TestUpdateRoomRequest_AmenityList(t *testing.T) {
	req := dto.UpdateRoomRequest{}
	assert.Nil(t, req.AmenityList())

	amenities := " WiFi,, AC ,TV,"
	req.Amenities = &amenities

	assert.Equal(t, pq.StringArray{"WiFi", "AC", "TV"}, req.AmenityList())

	cleared := ""
	req.Amenities = &cleared

	assert.Equal(t, pq.StringArray{}, req.AmenityList())
}

func TestUpdateRoomRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateRoomRequest{}).IsEmpty())

	description := ""
	assert.False(t, (&dto.UpdateRoomRequest{Description: &description}).IsEmpty())
}

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/rooms", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestCreateRoomRequest_Bind(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"name":            "Sunset Suite",
		"type":            "suite",
		"price_per_night": "850000",
		"capacity":        "4",
		"amenities":       "WiFi, Bathtub",
		"is_available":    "false",
	})

	var create dto.CreateRoomRequest

	require.NoError(t, create.Bind(req))
	assert.Equal(t, "Sunset Suite", create.Name)
	assert.Equal(t, model.TypeSuite, create.Type)
	assert.Equal(t, int64(850000), create.PricePerNight)
	assert.Equal(t, 4, create.Capacity)
	require.NotNil(t, create.IsAvailable)
	assert.False(t, *create.IsAvailable)
	assert.Nil(t, create.Image)

	room := create.ToModel("admin-1", nil)

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, pq.StringArray{"WiFi", "Bathtub"}, room.Amenities)
	assert.Equal(t, pq.StringArray{}, room.Images)
	assert.False(t, room.IsAvailable)
	assert.Equal(t, "admin-1", room.CreatedBy)
}

func TestCreateRoomRequest_BindRejectsNonNumericPrice(t *testing.T) {
	req := multipartRequest(t, map[string]string{"name": "Sunset Suite", "price_per_night": "mahal"})

	var create dto.CreateRoomRequest

	assert.EqualError(t, create.Bind(req), "price_per_night must be a number")
}

func TestUpdateRoomRequest_Bind(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"price_per_night": "300000",
		"amenities":       "",
	})

	var update dto.UpdateRoomRequest

	require.NoError(t, update.Bind(req))
	require.NotNil(t, update.PricePerNight)
	assert.Equal(t, int64(300000), *update.PricePerNight)
	assert.Nil(t, update.Capacity)
	assert.Nil(t, update.Description)
	require.NotNil(t, update.Amenities)
	assert.Equal(t, pq.StringArray{}, update.AmenityList())
	assert.False(t, update.IsEmpty())
}
