package users

type MeResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	AuthProvider string  `json:"auth_provider"`
	IsAuth       bool    `json:"is_auth"`
	Image        *string `json:"image,omitempty"`
}
