package db

import (
	"todo-api/internal/domain/entity"
)

// UserGateway is the persistence contract for identity accounts.
// FindByEmail returns a nil user when the email is unknown.
type UserGateway interface {
	FindByEmail(email string) (*entity.User, error)
	Create(user entity.User) (*entity.User, error)
}
