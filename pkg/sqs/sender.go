package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

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

// SQSClient is the subset of the SQS API the sender relies on.
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender sends JSON-serialized messages to SQS queues, resolving queue names
// to URLs on demand. A Sender is safe for concurrent use.
type Sender struct {
	sqsClient SQSClient

	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSender creates and returns a new Sender.
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes body to JSON and sends it to the named queue.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	return nil
}

// SendMessageBatch sends the messages to the named queue in chunks of 10,
// the SQS batch limit, and reports per-message outcomes.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}
	if len(messages) == 0 {
		return result, nil
	}

	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	const batchSize = 10
	for start := 0; start < len(messages); start += batchSize {
		end := min(start+batchSize, len(messages))
		batch := messages[start:end]

		entries := make([]types.SendMessageBatchRequestEntry, 0, len(batch))
		for i := range batch {
			jsonBody, err := json.Marshal(batch[i].Body)
			if err != nil {
				result.Failed = append(result.Failed, batch[i].MessageID)
				continue
			}
			body := string(jsonBody)
			entries = append(entries, types.SendMessageBatchRequestEntry{
				Id:          &batch[i].MessageID,
				MessageBody: &body,
			})
		}
		if len(entries) == 0 {
			continue
		}

		output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
			QueueUrl: &queueURL,
			Entries:  entries,
		})
		if err != nil {
			for i := range entries {
				result.Failed = append(result.Failed, *entries[i].Id)
			}
			continue
		}

		for _, entry := range output.Successful {
			result.Successful = append(result.Successful, *entry.Id)
		}
		for _, entry := range output.Failed {
			result.Failed = append(result.Failed, *entry.Id)
		}
	}

	return result, nil
}

// getQueueURL resolves and caches the URL for a queue name. Concurrent
// senders racing through a cache miss may both resolve; the cache write is
// idempotent.
func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	url, ok := s.queueURLs[queueName]
	s.mu.RUnlock()
	if ok {
		return url, nil
	}

	output, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.queueURLs[queueName] = *output.QueueUrl
	s.mu.Unlock()
	return *output.QueueUrl, nil
}
