package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
)

// stubUserGateway is an in-memory gateway backing the authentication tests.
type stubUserGateway struct {
	users map[string]entity.User
}

func (g *stubUserGateway) FindByEmail(email string) (*entity.User, error) {
	user, ok := g.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (g *stubUserGateway) Create(user entity.User) (*entity.User, error) {
	g.users[user.Email] = user
	return &user, nil
}

func newAuthServer() *echo.Echo {
	e := echo.New()
	gateway := &stubUserGateway{users: map[string]entity.User{}}
	useCase := auth.NewAuthUseCase(gateway, []byte("unit-test-secret"))
	NewAuthenticationController(e.Group("/api"), useCase).InitAuthenticationRoutes()
	return e
}

func TestRegisterEndpoint(t *testing.T) {
	e := newAuthServer()

	rec := doRequest(e, http.MethodPost, "/api/Authentication/Register",
		`{"name":"Jordan","email":"jordan@example.com","password":"hunter22"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Result)
	assert.NotEmpty(t, result.Token)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	e := newAuthServer()
	body := `{"name":"Jordan","email":"jordan@example.com","password":"hunter22"}`
	doRequest(e, http.MethodPost, "/api/Authentication/Register", body)

	rec := doRequest(e, http.MethodPost, "/api/Authentication/Register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var result model.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Result)
	assert.NotEmpty(t, result.Errors)
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	e := newAuthServer()

	rec := doRequest(e, http.MethodPost, "/api/Authentication/Register", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	e := newAuthServer()
	doRequest(e, http.MethodPost, "/api/Authentication/Register",
		`{"name":"Jordan","email":"jordan@example.com","password":"hunter22"}`)

	rec := doRequest(e, http.MethodPost, "/api/Authentication/Login",
		`{"email":"jordan@example.com","password":"hunter22"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Result)
	assert.NotEmpty(t, result.Token)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	e := newAuthServer()
	doRequest(e, http.MethodPost, "/api/Authentication/Register",
		`{"name":"Jordan","email":"jordan@example.com","password":"hunter22"}`)

	rec := doRequest(e, http.MethodPost, "/api/Authentication/Login",
		`{"email":"jordan@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var result model.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
}
