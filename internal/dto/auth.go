package dto

// LoginRequest carries the admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
