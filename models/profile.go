package models

import "time"

// Role gates access to the admin surface. The identity provider owns
// authentication; the role lives only in the mirrored profile document.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsAdmin reports whether the role grants access to /api/admin routes.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Profile mirrors an identity-provider user into the document store so the
// server has a trusted place for role and account status.
type Profile struct {
	UID       string    `bson:"uid" json:"uid"`
	Email     string    `bson:"email" json:"email"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Role      Role      `bson:"role" json:"role"`
	PhotoURL  string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Status    string    `bson:"status" json:"status"` // "active" or "disabled"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
