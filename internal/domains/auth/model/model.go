package model

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldUsername  = "username"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// Profile is an identity that can sign in. Guests book rooms, admins run the dashboard.
type Profile struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Username  string     `db:"username"`
	FullName  *string    `db:"full_name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

func (p Profile) IsAdmin() bool {
	return p.Role == constant.RoleAdmin
}
