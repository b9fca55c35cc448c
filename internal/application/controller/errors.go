package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// mapDomainError translates a use case error kind to the transport status
// code, once, at the boundary. Unexpected errors are logged server side and
// answered with a generic message.
func mapDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Error(msg.GetMessage("app.internal-error"),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError,
			map[string]string{"error": msg.GetMessage("app.internal-error")})
	}
}
