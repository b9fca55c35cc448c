package entity

import "time"

// TodoItem is the single persisted record of the application. The id is
// assigned by the database on insert and never reused within a store
// lifetime.
type TodoItem struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Task          string     `json:"task" gorm:"size:100"`
	IsComplete    bool       `json:"isComplete"`
	Description   *string    `json:"description" gorm:"size:100"`
	TaskTimestamp *time.Time `json:"taskTimestamp"`
}
