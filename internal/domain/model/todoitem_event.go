package model

import "time"

// TodoItemEventType enumerates the mutations published to the events queue.
type TodoItemEventType string

const (
	TodoItemCreated TodoItemEventType = "CREATED"
	TodoItemUpdated TodoItemEventType = "UPDATED"
	TodoItemDeleted TodoItemEventType = "DELETED"
	TodoItemCleared TodoItemEventType = "CLEARED"
)

// TodoItemEvent is the message sent to the configured queue after a mutating
// todo item operation. ItemID and Task are zero for CLEARED events.
type TodoItemEvent struct {
	Type      TodoItemEventType `json:"type"`
	ItemID    int64             `json:"itemId,omitempty"`
	Task      string            `json:"task,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
