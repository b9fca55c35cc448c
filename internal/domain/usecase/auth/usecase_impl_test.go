package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

var testSecret = []byte("unit-test-secret")

// memoryUserGateway is an in-memory UserGateway keyed by email.
type memoryUserGateway struct {
	users map[string]entity.User
}

func newMemoryUserGateway() *memoryUserGateway {
	return &memoryUserGateway{users: map[string]entity.User{}}
}

func (g *memoryUserGateway) FindByEmail(email string) (*entity.User, error) {
	user, ok := g.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (g *memoryUserGateway) Create(user entity.User) (*entity.User, error) {
	g.users[user.Email] = user
	return &user, nil
}

func registerDTO() model.RegisterUserDTO {
	return model.RegisterUserDTO{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "hunter22",
	}
}

func TestRegister(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	result, err := useCase.Register(registerDTO())
	require.NoError(t, err)
	assert.True(t, result.Result)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.Errors)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	_, err := useCase.Register(registerDTO())
	require.NoError(t, err)

	result, err := useCase.Register(registerDTO())
	require.NoError(t, err)
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
	assert.NotEmpty(t, result.Errors)
}

func TestRegisterMissingFields(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	result, err := useCase.Register(model.RegisterUserDTO{})
	require.NoError(t, err)
	assert.False(t, result.Result)
	assert.Len(t, result.Errors, 3)
}

func TestRegisterDoesNotStorePlaintextPassword(t *testing.T) {
	gateway := newMemoryUserGateway()
	useCase := NewAuthUseCase(gateway, testSecret)

	dto := registerDTO()
	_, err := useCase.Register(dto)
	require.NoError(t, err)

	stored := gateway.users[dto.Email]
	assert.NotEqual(t, dto.Password, stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestLogin(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	dto := registerDTO()
	_, err := useCase.Register(dto)
	require.NoError(t, err)

	result, err := useCase.Login(model.LoginUserDTO{Email: dto.Email, Password: dto.Password})
	require.NoError(t, err)
	assert.True(t, result.Result)
	assert.NotEmpty(t, result.Token)
}

func TestLoginUnknownEmail(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	result, err := useCase.Login(model.LoginUserDTO{Email: "nobody@example.com", Password: "whatever"})
	require.NoError(t, err)
	assert.False(t, result.Result)
	assert.NotEmpty(t, result.Errors)
}

func TestLoginWrongPassword(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	dto := registerDTO()
	_, err := useCase.Register(dto)
	require.NoError(t, err)

	result, err := useCase.Login(model.LoginUserDTO{Email: dto.Email, Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
}

func TestTokenClaims(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	dto := registerDTO()
	result, err := useCase.Register(dto)
	require.NoError(t, err)

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (any, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, dto.Email, claims["sub"])
	assert.Equal(t, dto.Email, claims["email"])
	assert.NotEmpty(t, claims["Id"])
	assert.NotEmpty(t, claims["jti"])
	assert.NotNil(t, claims["iat"])
	assert.NotNil(t, claims["exp"])
}

func TestParseTokenRoundtrip(t *testing.T) {
	gateway := newMemoryUserGateway()
	useCase := NewAuthUseCase(gateway, testSecret)

	dto := registerDTO()
	result, err := useCase.Register(dto)
	require.NoError(t, err)

	userID, err := useCase.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, gateway.users[dto.Email].ID, userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	useCase := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	_, err := useCase.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthUseCase(newMemoryUserGateway(), []byte("other-secret"))
	verifier := NewAuthUseCase(newMemoryUserGateway(), testSecret)

	result, err := issuer.Register(registerDTO())
	require.NoError(t, err)

	_, err = verifier.ParseToken(result.Token)
	assert.Error(t, err)
}
