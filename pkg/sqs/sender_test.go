package sqs

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSQSClient records sent messages behind its own lock so tests can hammer
// the sender from multiple goroutines.
type fakeSQSClient struct {
	mu         sync.Mutex
	urlLookups int
	sentBodies []string
	batchSizes []int
}

func (f *fakeSQSClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlLookups++
	url := fmt.Sprintf("https://sqs.local/%s", *params.QueueName)
	return &sqs.GetQueueUrlOutput{QueueUrl: &url}, nil
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentBodies = append(f.sentBodies, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQSClient) SendMessageBatch(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchSizes = append(f.batchSizes, len(params.Entries))

	output := &sqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		id := *entry.Id
		output.Successful = append(output.Successful, types.SendMessageBatchResultEntry{Id: &id})
	}
	return output, nil
}

func TestSendMessageResolvesURLOnce(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)

	require.NoError(t, sender.SendMessage(context.Background(), "events", map[string]string{"a": "1"}))
	require.NoError(t, sender.SendMessage(context.Background(), "events", map[string]string{"a": "2"}))

	assert.Equal(t, 1, client.urlLookups)
	require.Len(t, client.sentBodies, 2)
	assert.JSONEq(t, `{"a":"1"}`, client.sentBodies[0])
}

func TestSendMessageConcurrent(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)

	const goroutines = 16
	const sendsPerGoroutine = 8

	var wg sync.WaitGroup
	errs := make(chan error, goroutines*sendsPerGoroutine)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < sendsPerGoroutine; i++ {
				errs <- sender.SendMessage(context.Background(), "events",
					map[string]int{"goroutine": g, "send": i})
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, client.sentBodies, goroutines*sendsPerGoroutine)
}

func TestSendMessageBatchChunks(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)

	messages := make([]BatchMessage, 25)
	for i := range messages {
		messages[i] = BatchMessage{
			MessageID: fmt.Sprintf("msg-%d", i),
			Body:      map[string]int{"n": i},
		}
	}

	result, err := sender.SendMessageBatch(context.Background(), "events", messages)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 5}, client.batchSizes)
	assert.Len(t, result.Successful, 25)
	assert.Empty(t, result.Failed)
}

func TestSendMessageBatchEmpty(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client)

	result, err := sender.SendMessageBatch(context.Background(), "events", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Successful)
	assert.Empty(t, result.Failed)
	assert.Zero(t, client.urlLookups)
}
