package dto

import (
	"net/http"
	"strconv"

	authModel "hotel/internal/domains/auth/model"
	authDto "hotel/internal/domains/auth/model/dto"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
)

// ProfileResponse is the account view shared with the auth endpoints.
type ProfileResponse = authDto.ProfileResponse

// UpdateProfileRequest is the admin edit of an account. Nil fields are left untouched.
type UpdateProfileRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=admin guest"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FullName == nil && r.Role == nil && r.Active == nil
}

// Demotes reports whether the change would take admin rights away from the account.
func (r UpdateProfileRequest) Demotes() bool {
	return (r.Role != nil && *r.Role != constant.RoleAdmin) || (r.Active != nil && !*r.Active)
}

// ListQuery holds the optional filters of the profile listing.
type ListQuery struct {
	Email  string
	Role   string
	Active *bool
}

func (q *ListQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.Email = values.Get(authModel.FieldEmail)
	q.Role = values.Get(authModel.FieldRole)

	if active, err := strconv.ParseBool(values.Get(authModel.FieldActive)); err == nil {
		q.Active = &active
	}
}

// Filter only includes the criteria that were given, so an empty query lists everyone.
func (q ListQuery) Filter() gDto.FilterGroup {
	filters := []any{}

	if q.Email != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    authModel.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    q.Email,
			Table:    authModel.TableName,
		})
	}

	if q.Role != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    authModel.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    q.Role,
			Table:    authModel.TableName,
		})
	}

	if q.Active != nil {
		filters = append(filters, gDto.Filter{
			Field:    authModel.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *q.Active,
			Table:    authModel.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

type GetProfilesResponse struct {
	Profiles  []ProfileResponse `json:"profiles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProfilesResponse) FromModels(models []authModel.Profile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Profiles = make([]ProfileResponse, len(models))
	for i, mod := range models {
		r.Profiles[i].FromModel(mod)
	}
}
