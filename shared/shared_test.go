package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "true", input: "true", want: boolPtr(true)},
		{name: "false", input: "false", want: boolPtr(false)},
		{name: "numeric", input: "1", want: boolPtr(true)},
		{name: "upper case", input: "FALSE", want: boolPtr(false)},
		{name: "not a bool", input: "available", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "guest count", input: "2", want: 2},
		{name: "padded", input: " 4 ", want: 4},
		{name: "empty", input: "", wantErr: true},
		{name: "words", input: "two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertStringToInt64(t *testing.T) {
	got, err := shared.ConvertStringToInt64(" 3500000 ")
	require.NoError(t, err)
	assert.Equal(t, int64(3500000), got)

	_, err = shared.ConvertStringToInt64("Rp 350.000")
	assert.Error(t, err)
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trims and drops empty entries",
			input: "Wi-Fi, AC,, TV ",
			want:  []string{"Wi-Fi", "AC", "TV"},
		},
		{
			name:  "single entry",
			input: "Mini bar",
			want:  []string{"Mini bar"},
		},
		{
			name:  "only separators",
			input: " , ,",
			want:  []string{},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.SplitCommaList(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no rows", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 25, limit: 0, want: 1},
		{name: "negative limit", total: 25, limit: -5, want: 1},
		{name: "exact", total: 20, limit: 10, want: 2},
		{name: "remainder", total: 21, limit: 10, want: 3},
		{name: "limit above total", total: 4, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomUpdate struct {
		Name          string  `db:"name"`
		PricePerNight int64   `db:"price_per_night"`
		Description   *string `db:"description"`
		Image         string
	}

	empty := ""

	tests := []struct {
		name string
		data roomUpdate
		want map[string]any
	}{
		{
			name: "only set fields are written",
			data: roomUpdate{Name: "Garden Deluxe", Image: "ignored without a db tag"},
			want: map[string]any{"name": "Garden Deluxe"},
		},
		{
			name: "a set pointer is written even when it points at a zero value",
			data: roomUpdate{PricePerNight: 250000, Description: &empty},
			want: map[string]any{"price_per_night": int64(250000), "description": &empty},
		},
		{
			name: "nothing set",
			data: roomUpdate{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.TransformFields(tt.data, "admin-1")

			assert.Equal(t, "admin-1", got[constant.FieldModifiedBy])
			assert.IsType(t, time.Time{}, got[constant.FieldModifiedAt])

			delete(got, constant.FieldModifiedBy)
			delete(got, constant.FieldModifiedAt)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("7f1c0b7e-5a43-4f4e-9a55-8f3f1b2d6c10", "id", "rooms")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "7f1c0b7e-5a43-4f4e-9a55-8f3f1b2d6c10",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}, got)
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		parts  []string
		want   string
	}{
		{name: "prefix only", prefix: "room:catalog", want: "room:catalog"},
		{name: "one part", prefix: "booking:get", parts: []string{"b-1"}, want: "booking:get:b-1"},
		{name: "several parts", prefix: "rate_limit", parts: []string{"10.0.0.1", "curl/8.0"}, want: "rate_limit:10.0.0.1:curl/8.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "profiles.created_at", SortDir: dto.SortDirDesc}
	byUser := func(id string) dto.FilterGroup { return shared.FilterByID(id, "user_id", "bookings") }

	base := shared.BuildCacheKeyWithQuery("booking:mine:guest-1", params, byUser("guest-1"))

	assert.True(t, strings.HasPrefix(base, "booking:mine:guest-1:1:10:profiles.created_at:"+dto.SortDirDesc+":"))
	assert.Equal(t, base, shared.BuildCacheKeyWithQuery("booking:mine:guest-1", params, byUser("guest-1")), "stable for equal input")

	nextPage := params
	nextPage.Page = 2

	tests := []struct {
		name   string
		params dto.QueryParams
		filter dto.FilterGroup
	}{
		{name: "page", params: nextPage, filter: byUser("guest-1")},
		{name: "filter value", params: params, filter: byUser("guest-2")},
		{name: "no filter", params: params, filter: dto.FilterGroup{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, shared.BuildCacheKeyWithQuery("booking:mine:guest-1", tt.params, tt.filter))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "clears the prefix"},
		{name: "cache failure is only logged", err: errors.New("redis: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := mocks.NewMockRedisCache(gomock.NewController(t))
			redisCache.EXPECT().Clear(gomock.Any(), "booking:mine*").Return(tt.err)

			assert.NotPanics(t, func() {
				shared.InvalidateCaches(context.Background(), redisCache, "booking:mine")
			})
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
