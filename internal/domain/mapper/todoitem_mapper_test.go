package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

func TestToTodoItemDTO(t *testing.T) {
	description := "Around the block"
	timestamp := time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)

	dto := ToTodoItemDTO(entity.TodoItem{
		ID:            7,
		Task:          "Walk the dog",
		IsComplete:    true,
		Description:   &description,
		TaskTimestamp: &timestamp,
	})

	assert.Equal(t, int64(7), dto.ID)
	assert.Equal(t, "Walk the dog", dto.Task)
	assert.True(t, dto.IsComplete)
	require.NotNil(t, dto.Description)
	assert.Equal(t, description, *dto.Description)
	assert.Equal(t, "Monday, 04 Mar 2024 15:30", dto.FormattedTaskTimestamp)
}

func TestToTodoItemDTOWithoutTimestamp(t *testing.T) {
	dto := ToTodoItemDTO(entity.TodoItem{ID: 1, Task: "Walk the dog"})

	assert.Nil(t, dto.TaskTimestamp)
	assert.Empty(t, dto.FormattedTaskTimestamp)
}

func TestToTodoItemDTOsNeverNil(t *testing.T) {
	dtos := ToTodoItemDTOs(nil)

	require.NotNil(t, dtos)
	assert.Empty(t, dtos)
}

func TestFromCreateTodoItemDTOLeavesIDZero(t *testing.T) {
	item := FromCreateTodoItemDTO(model.CreateTodoItemDTO{Task: "Walk the dog", IsComplete: true})

	assert.Zero(t, item.ID)
	assert.Equal(t, "Walk the dog", item.Task)
	assert.True(t, item.IsComplete)
}

func TestApplyUpdateTodoItemDTOPreservesID(t *testing.T) {
	item := entity.TodoItem{ID: 7, Task: "Walk the dog"}
	ApplyUpdateTodoItemDTO(model.UpdateTodoItemDTO{Task: "Walk the cat", IsComplete: true}, &item)

	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "Walk the cat", item.Task)
	assert.True(t, item.IsComplete)
}

func TestUpdateProjectionRoundtrip(t *testing.T) {
	description := "Around the block"
	timestamp := time.Now()
	item := entity.TodoItem{
		ID:            3,
		Task:          "Walk the dog",
		IsComplete:    true,
		Description:   &description,
		TaskTimestamp: &timestamp,
	}

	restored := entity.TodoItem{ID: 3}
	ApplyUpdateTodoItemDTO(ToUpdateTodoItemDTO(item), &restored)

	assert.Equal(t, item, restored)
}
