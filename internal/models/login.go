package models

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Admin password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// AdminLoginResponse represents a successful admin login
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	OK bool `json:"ok"`

	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
