package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/pkg/msg"
)

type AuthenticationController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthenticationController(api *echo.Group, useCase auth.UseCase) *AuthenticationController {
	return &AuthenticationController{api: api, useCase: useCase}
}

// InitAuthenticationRoutes initializes the register and login routes. The
// given middlewares are applied to both.
func (controller *AuthenticationController) InitAuthenticationRoutes(middlewares ...echo.MiddlewareFunc) {
	controller.api.POST("/Authentication/Register", controller.Register, middlewares...)
	controller.api.POST("/Authentication/Login", controller.Login, middlewares...)
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and return a signed bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body model.RegisterUserDTO true "Account data"
// @Success 200 {object} model.AuthResult "Token and success flag"
// @Failure 400 {object} model.AuthResult "Registration failure with errors"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /Authentication/Register [post]
func (controller *AuthenticationController) Register(c echo.Context) error {
	var dto model.RegisterUserDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest,
			map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	result, err := controller.useCase.Register(dto)
	if err != nil {
		return mapDomainError(c, err)
	}
	if !result.Result {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}

// Login godoc
// @Summary Authenticate an account
// @Description Exchange email and password for a signed bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body model.LoginUserDTO true "Credentials"
// @Success 200 {object} model.AuthResult "Token and success flag"
// @Failure 400 {object} model.AuthResult "Authentication failure with errors"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /Authentication/Login [post]
func (controller *AuthenticationController) Login(c echo.Context) error {
	var dto model.LoginUserDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest,
			map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	result, err := controller.useCase.Login(dto)
	if err != nil {
		return mapDomainError(c, err)
	}
	if !result.Result {
		return c.JSON(http.StatusBadRequest, result)
	}
	return c.JSON(http.StatusOK, result)
}
