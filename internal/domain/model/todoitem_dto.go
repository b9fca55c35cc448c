package model

import "time"

// TodoItemDTO is the wire representation of a todo item.
// FormattedTaskTimestamp is a display rendering of TaskTimestamp, empty when
// no timestamp is set.
type TodoItemDTO struct {
	ID                     int64      `json:"id"`
	Task                   string     `json:"task"`
	IsComplete             bool       `json:"isComplete"`
	Description            *string    `json:"description,omitempty"`
	TaskTimestamp          *time.Time `json:"taskTimestamp,omitempty"`
	FormattedTaskTimestamp string     `json:"formattedTaskTimestamp,omitempty"`
}

type CreateTodoItemDTO struct {
	Task          string     `json:"task"`
	IsComplete    bool       `json:"isComplete"`
	Description   *string    `json:"description"`
	TaskTimestamp *time.Time `json:"taskTimestamp"`
}

type UpdateTodoItemDTO struct {
	Task          string     `json:"task"`
	IsComplete    bool       `json:"isComplete"`
	Description   *string    `json:"description"`
	TaskTimestamp *time.Time `json:"taskTimestamp"`
}
