package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePlaceholder(t *testing.T) {
	t.Run("plain string passes through", func(t *testing.T) {
		assert.Equal(t, "localhost", resolvePlaceholder("localhost"))
	})

	t.Run("default used when env unset", func(t *testing.T) {
		assert.Equal(t, "5432", resolvePlaceholder("${UNSET_TEST_VAR:5432}"))
	})

	t.Run("empty default", func(t *testing.T) {
		assert.Equal(t, "", resolvePlaceholder("${UNSET_TEST_VAR:}"))
	})

	t.Run("env value wins over default", func(t *testing.T) {
		t.Setenv("SET_TEST_VAR", "override")
		assert.Equal(t, "override", resolvePlaceholder("${SET_TEST_VAR:default}"))
	})
}

func TestPropertiesLoaded(t *testing.T) {
	assert.Equal(t, "todo-api", GetString("app.name"))
	assert.Equal(t, "/api", GetString("app.server.context-path"))
	assert.NotEmpty(t, GetString("app.server.port"))
}
