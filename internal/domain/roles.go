package domain

// Role is the authorization role carried by a customer row and its tokens.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// PayloadKey is the JSON key the login response nests the account under.
// Admins and customers have always received differently shaped payloads.
func (r Role) PayloadKey() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "customer"
}

// LoginMessage is the role-specific success message for login responses.
func (r Role) LoginMessage() string {
	if r == RoleAdmin {
		return "Admin login successful"
	}
	return "Customer login successful"
}
