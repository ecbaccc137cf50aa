package domain

// Documented account roles. Role is stored as a free-form string and never
// enforced by the service.
const (
	UserRoleCitizen  = "citizen"
	UserRoleOfficial = "official"
)

// User is an account that can register, log in and be referenced by name in
// report submissions. Password is stored and compared as the raw string the
// caller provided. CreatedAt is a YYYY-MM-DD string set once at creation.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt"`
}
