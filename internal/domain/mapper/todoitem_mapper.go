package mapper

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// taskTimestampLayout is the display rendering used for
// FormattedTaskTimestamp.
const taskTimestampLayout = "Monday, 02 Jan 2006 15:04"

// ToTodoItemDTO maps an entity to its wire representation.
func ToTodoItemDTO(item entity.TodoItem) model.TodoItemDTO {
	dto := model.TodoItemDTO{
		ID:            item.ID,
		Task:          item.Task,
		IsComplete:    item.IsComplete,
		Description:   item.Description,
		TaskTimestamp: item.TaskTimestamp,
	}
	if item.TaskTimestamp != nil {
		dto.FormattedTaskTimestamp = item.TaskTimestamp.Format(taskTimestampLayout)
	}
	return dto
}

// ToTodoItemDTOs maps a list of entities, always returning a non-nil slice.
func ToTodoItemDTOs(items []entity.TodoItem) []model.TodoItemDTO {
	dtos := make([]model.TodoItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ToTodoItemDTO(item))
	}
	return dtos
}

// FromCreateTodoItemDTO builds a new entity from a create request. The id is
// left zero for the store to assign.
func FromCreateTodoItemDTO(dto model.CreateTodoItemDTO) entity.TodoItem {
	return entity.TodoItem{
		Task:          dto.Task,
		IsComplete:    dto.IsComplete,
		Description:   dto.Description,
		TaskTimestamp: dto.TaskTimestamp,
	}
}

// ToUpdateTodoItemDTO projects an entity onto the updatable field set.
func ToUpdateTodoItemDTO(item entity.TodoItem) model.UpdateTodoItemDTO {
	return model.UpdateTodoItemDTO{
		Task:          item.Task,
		IsComplete:    item.IsComplete,
		Description:   item.Description,
		TaskTimestamp: item.TaskTimestamp,
	}
}

// ApplyUpdateTodoItemDTO copies the updatable fields onto an existing entity,
// leaving the id untouched.
func ApplyUpdateTodoItemDTO(dto model.UpdateTodoItemDTO, item *entity.TodoItem) {
	item.Task = dto.Task
	item.IsComplete = dto.IsComplete
	item.Description = dto.Description
	item.TaskTimestamp = dto.TaskTimestamp
}
