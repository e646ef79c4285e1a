package domain

import "time"

type Role string

const (
	RolePerformer Role = "performer"
	RoleCustomer  Role = "customer"
)

func (r Role) Valid() bool {
	return r == RolePerformer || r == RoleCustomer
}

// Profile is the account row created at sign-up by the identity provider.
// The role never changes after creation.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"user_type"`
	Phone     *string   `json:"phone"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   Role
}
