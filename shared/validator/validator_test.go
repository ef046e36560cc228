package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stayKind string

func (k stayKind) IsValid() bool {
	return k == "short" || k == "long"
}

type guestRequest struct {
	Name     string   `json:"guest_name"    validate:"required,min=2,max=100"`
	Email    string   `json:"guest_email"   validate:"required,email"`
	CheckIn  string   `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	Guests   int      `json:"guests_count"  validate:"gte=1,lte=10"`
	Kind     stayKind `json:"kind"          validate:"required,enum"`
	Internal string   `json:"-"             validate:"omitempty,max=3"`
}

func validGuest() guestRequest {
	return guestRequest{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		CheckIn: "2025-03-01",
		Guests:  2,
		Kind:    "short",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *guestRequest)
		wantMsg string
	}{
		{
			name:   "valid struct",
			mutate: func(_ *guestRequest) {},
		},
		{
			name:    "name too short reports json field name",
			mutate:  func(req *guestRequest) { req.Name = "B" },
			wantMsg: "guest_name must be greater than or equal to 2",
		},
		{
			name:    "invalid email",
			mutate:  func(req *guestRequest) { req.Email = "budi" },
			wantMsg: "guest_email must be a valid email address",
		},
		{
			name:    "date with wrong layout",
			mutate:  func(req *guestRequest) { req.CheckIn = "01/03/2025" },
			wantMsg: "check_in_date must match the format 2006-01-02",
		},
		{
			name:    "zero guests",
			mutate:  func(req *guestRequest) { req.Guests = 0 },
			wantMsg: "guests_count must be greater than or equal to 1",
		},
		{
			name:    "unknown enum value",
			mutate:  func(req *guestRequest) { req.Kind = "weekend" },
			wantMsg: "kind has an unsupported value",
		},
		{
			name:    "untagged field falls back to struct name",
			mutate:  func(req *guestRequest) { req.Internal = "toolong" },
			wantMsg: "Internal must be less than or equal to 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_ReportsFirstFailingField(t *testing.T) {
	req := guestRequest{}

	err := validator.ValidateStruct(&req)

	assert.EqualError(t, err, "guest_name is required")
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:  "valid required string",
			field: "test",
			tag:   "required",
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:  "valid uuid",
			field: "550e8400-e29b-41d4-a716-446655440000",
			tag:   "uuid",
		},
		{
			name:        "invalid uuid",
			field:       "room-1",
			tag:         "uuid",
			expectError: true,
		},
		{
			name:  "valid oneof",
			field: "admin",
			tag:   "oneof=admin guest",
		},
		{
			name:        "invalid oneof",
			field:       "superuser",
			tag:         "oneof=admin guest",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"guest_name":"Budi","guest_email":"budi@example.com","check_in_date":"2025-03-01","guests_count":2,"kind":"long"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"guest_name":"Budi","guest_email":"nope","check_in_date":"2025-03-01","guests_count":2,"kind":"long"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"guest_name":"Budi","guest_email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req guestRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &req)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
