package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is the client-held record of the authenticated account. Phone is only
// set for OTP-registered retail accounts; Email only for admin accounts.
// Token carries the opaque bearer credential alongside the profile so a
// persisted user round-trips as a single JSON document.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// IsAdmin reports whether the user holds the wholesaler/operator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsCustomer reports whether the user holds the retailer/buyer role.
func (u *User) IsCustomer() bool {
	return u != nil && u.Role == RoleCustomer
}
