package models

// Role values issued by the remote auth service
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUpRequest is the body of POST /auth/sign-up
type SignUpRequest struct {
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser is the user document returned on login
type AuthUser struct {
	ID          string `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}
