package dto

// RegisterUserRequest payload.
type RegisterUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// UpdateUserRequest payload for full account updates.
type UpdateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated identity, or null identity fields
// plus an explanatory message on failure.
type LoginResponse struct {
	ID         *int64  `json:"id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Message    string  `json:"message"`
}
