package db

import (
	"todo-api/internal/domain/model"
)

// HealthDBGateway reports the availability of the backing database.
type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
