package queue

import "context"

// BatchMessage is a single message in a batch send.
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult reports which message ids of a batch send succeeded and failed.
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// Sender publishes messages to a named queue.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
	SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error)
}
