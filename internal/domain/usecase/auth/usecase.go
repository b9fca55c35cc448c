package auth

import (
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Register creates an account and returns a token. A failed registration
	// is reported through the AuthResult, not the error.
	Register(dto model.RegisterUserDTO) (*model.AuthResult, error)
	// Login exchanges credentials for a token. Failed credentials are
	// reported through the AuthResult, not the error.
	Login(dto model.LoginUserDTO) (*model.AuthResult, error)
	// ParseToken verifies a bearer token and returns the user id claim.
	ParseToken(token string) (string, error)
}
