package auth

import "codeberg.org/clipcast/server/clipcast/users"

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// LogoutResponse is the wire shape for logout outcomes
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
