package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

func TestRegisterRequest_ToModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "budi@example.com",
		Password: "correct-horse",
		Username: "budi",
		FullName: stringPtr("Budi Santoso"),
	}

	profile := req.ToModel("hashed")

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "hashed", profile.Password)
	assert.Equal(t, constant.RoleGuest, profile.Role)
	assert.True(t, profile.Active)
	assert.Equal(t, profile.ID, profile.CreatedBy)
	assert.Nil(t, profile.LastLogin)
}

func TestProfileResponse_FromModel(t *testing.T) {
	lastLogin := timezone.Now()

	var res dto.ProfileResponse
	res.FromModel(model.Profile{
		ID:        "p-1",
		Email:     "admin@hotel.test",
		Password:  "hashed",
		Username:  "admin",
		Role:      constant.RoleAdmin,
		LastLogin: &lastLogin,
	})

	assert.Equal(t, "p-1", res.ID)
	assert.Equal(t, constant.RoleAdmin, res.Role)
	require.NotNil(t, res.LastLogin)

	encoded, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "hashed")
}

func stringPtr(s string) *string {
	return &s
}
