package msg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMessageReplacesPlaceholders(t *testing.T) {
	message := GetMessage("todo-item.error.not-exists", int64(42))

	assert.Contains(t, message, "42")
	assert.Contains(t, message, "does not exist")
}

func TestGetMessageWithoutArguments(t *testing.T) {
	message := GetMessage("todo-item.error.invalid-id")

	assert.NotEmpty(t, message)
	assert.NotContains(t, message, "{0}")
}

func TestGetMessageUnknownKey(t *testing.T) {
	message := GetMessage("no.such.key")

	assert.Equal(t, "Message not found: no.such.key", message)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"string", "hello", "hello"},
		{"error", errors.New("boom"), "boom"},
		{"int", 7, "7"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"struct as json", struct {
			Name string `json:"name"`
		}{Name: "x"}, `{"name":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringify(tt.arg))
		})
	}
}
