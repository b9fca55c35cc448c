package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/usecase/auth"
	"todo-api/pkg/msg"
)

// UserIDContextKey is where BearerAuth stores the authenticated user id.
const UserIDContextKey = "userId"

// BearerAuth rejects requests without a valid bearer token and stores the
// authenticated user id in the request context.
func BearerAuth(useCase auth.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized,
					map[string]string{"error": msg.GetMessage("auth.error.missing-token")})
			}

			userID, err := useCase.ParseToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					map[string]string{"error": msg.GetMessage("auth.error.invalid-token")})
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}
