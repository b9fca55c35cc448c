package todoitem

import (
	"time"

	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll() ([]model.TodoItemDTO, error)
	FindFiltered(task string, search string) ([]model.TodoItemDTO, error)
	FindByID(id int64) (*model.TodoItemDTO, error)
	Create(dto model.CreateTodoItemDTO) (*model.TodoItemDTO, error)
	UpdateByID(id int64, dto model.UpdateTodoItemDTO) error
	PatchByID(id int64, patchDocument []byte) error
	DeleteByID(id int64) error
	DeleteAll() error
	PurgeCompleted(retention time.Duration) (int64, error)
}
