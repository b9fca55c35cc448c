package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

// tokenTTL bounds every issued token to a single day.
const tokenTTL = 24 * time.Hour

type authUseCase struct {
	gateway   db.UserGateway
	jwtSecret []byte
}

// NewAuthUseCase builds the authentication use case. The signing secret is
// injected once at construction and never read from global state.
func NewAuthUseCase(gateway db.UserGateway, jwtSecret []byte) UseCase {
	return &authUseCase{
		gateway:   gateway,
		jwtSecret: jwtSecret,
	}
}

func (uc *authUseCase) Register(dto model.RegisterUserDTO) (*model.AuthResult, error) {
	if failures := validateRegister(dto); len(failures) > 0 {
		return &model.AuthResult{Result: false, Errors: failures}, nil
	}

	existing, err := uc.gateway.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &model.AuthResult{
			Result: false,
			Errors: []string{msg.GetMessage("auth.error.email-taken")},
		}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := uc.gateway.Create(entity.User{
		ID:       uuid.NewString(),
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hash),
	})
	if err != nil {
		return &model.AuthResult{
			Result: false,
			Errors: []string{msg.GetMessage("auth.error.create-failed")},
		}, nil
	}

	token, err := uc.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResult{Token: token, Result: true}, nil
}

func (uc *authUseCase) Login(dto model.LoginUserDTO) (*model.AuthResult, error) {
	if failures := validateLogin(dto); len(failures) > 0 {
		return &model.AuthResult{Result: false, Errors: failures}, nil
	}

	user, err := uc.gateway.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &model.AuthResult{
			Result: false,
			Errors: []string{msg.GetMessage("auth.error.invalid-email")},
		}, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return &model.AuthResult{
			Result: false,
			Errors: []string{msg.GetMessage("auth.error.invalid-credentials")},
		}, nil
	}

	token, err := uc.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResult{Token: token, Result: true}, nil
}

// ParseToken verifies signature, scheme and expiry, returning the Id claim.
func (uc *authUseCase) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	userID, ok := claims["Id"].(string)
	if !ok || userID == "" {
		return "", errors.New("user id claim not found")
	}
	return userID, nil
}

// generateToken issues a signed HS256 bearer token carrying the subject id,
// email, issue time and a unique token id.
func (uc *authUseCase) generateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"Id":    user.ID,
		"sub":   user.Email,
		"email": user.Email,
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

func validateRegister(dto model.RegisterUserDTO) []string {
	var failures []string
	if strings.TrimSpace(dto.Name) == "" {
		failures = append(failures, msg.GetMessage("auth.error.name-required"))
	}
	failures = append(failures, validateCredentials(dto.Email, dto.Password)...)
	return failures
}

func validateLogin(dto model.LoginUserDTO) []string {
	return validateCredentials(dto.Email, dto.Password)
}

func validateCredentials(email string, password string) []string {
	var failures []string
	if strings.TrimSpace(email) == "" {
		failures = append(failures, msg.GetMessage("auth.error.email-required"))
	}
	if password == "" {
		failures = append(failures, msg.GetMessage("auth.error.password-required"))
	}
	return failures
}
