package auth

// LoginRequest represents the admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
