package db

import (
	"time"

	"todo-api/internal/domain/entity"
)

// TodoItemGateway is the persistence contract for todo items. Lookup methods
// return a nil item for a missing id instead of an error.
type TodoItemGateway interface {
	FindAll() ([]entity.TodoItem, error)
	// FindFiltered narrows the listing to items whose task equals task
	// exactly and whose task or description contains search. Empty filters
	// are skipped; with both empty it behaves as FindAll. Filtered results
	// are ordered ascending by task name.
	FindFiltered(task string, search string) ([]entity.TodoItem, error)
	FindByID(id int64) (*entity.TodoItem, error)
	ExistsByID(id int64) (bool, error)

	Create(item entity.TodoItem) (*entity.TodoItem, error)
	Save(item entity.TodoItem) (*entity.TodoItem, error)

	DeleteByID(id int64) error
	DeleteAll() error
	DeleteCompletedBefore(cutoff time.Time) (int64, error)
}
