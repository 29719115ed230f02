package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthUser struct {
	Username    string `json:"username"`
	ChatCount   int    `json:"chatCount"`
	TotalTokens int64  `json:"totalTokens"`
}

type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

type ProfileResponse struct {
	Username    string `json:"username"`
	ChatCount   int    `json:"chatCount"`
	TotalTokens int64  `json:"totalTokens"`
}
