package model

// AuthResult is the authentication response body. Errors is only populated
// when Result is false. It is never persisted.
type AuthResult struct {
	Token  string   `json:"token,omitempty"`
	Result bool     `json:"result"`
	Errors []string `json:"errors,omitempty"`
}

type RegisterUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
