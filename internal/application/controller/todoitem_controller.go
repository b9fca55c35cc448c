package controller

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todoitem"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TodoItemController struct {
	api     *echo.Group
	useCase todoitem.UseCase
}

func NewTodoItemController(api *echo.Group, useCase todoitem.UseCase) *TodoItemController {
	return &TodoItemController{api: api, useCase: useCase}
}

// InitTodoItemRoutes initializes todo item routes. The given middlewares are
// applied to every route of the group.
func (controller *TodoItemController) InitTodoItemRoutes(middlewares ...echo.MiddlewareFunc) {
	controller.api.GET("/TodoItems", controller.FindAll, middlewares...)
	controller.api.GET("/TodoItems/filter", controller.FindFiltered, middlewares...)
	controller.api.GET("/TodoItems/:id", controller.FindByID, middlewares...)
	controller.api.POST("/TodoItems", controller.Create, middlewares...)
	controller.api.PUT("/TodoItems/:id", controller.UpdateByID, middlewares...)
	controller.api.PATCH("/TodoItems/:id", controller.PatchByID, middlewares...)
	controller.api.DELETE("/TodoItems/:id", controller.DeleteByID, middlewares...)
	controller.api.DELETE("/TodoItems", controller.DeleteAll, middlewares...)
}

// FindAll godoc
// @Summary Get all todo items
// @Description Retrieve every stored todo item
// @Tags todo-items
// @Accept json
// @Produce json
// @Success 200 {array} model.TodoItemDTO "All todo items, empty array when none"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems [get]
func (controller *TodoItemController) FindAll(c echo.Context) error {
	items, err := controller.useCase.FindAll()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// FindFiltered godoc
// @Summary Get filtered todo items
// @Description Retrieve todo items narrowed by exact task match and by a substring of task or description
// @Tags todo-items
// @Accept json
// @Produce json
// @Param task query string false "Exact task name"
// @Param search query string false "Substring of task or description"
// @Success 200 {array} model.TodoItemDTO "Matching todo items ordered by task"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems/filter [get]
func (controller *TodoItemController) FindFiltered(c echo.Context) error {
	items, err := controller.useCase.FindFiltered(c.QueryParam("task"), c.QueryParam("search"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// FindByID godoc
// @Summary Get a single todo item
// @Description Find a todo item by its id
// @Tags todo-items
// @Accept json
// @Produce json
// @Param id path int true "Todo item id"
// @Success 200 {object} model.TodoItemDTO "The todo item"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Todo item not found"
// @Router /TodoItems/{id} [get]
func (controller *TodoItemController) FindByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return mapDomainError(c, err)
	}

	item, err := controller.useCase.FindByID(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Create a new todo item
// @Description Create a todo item from the provided body; the id is assigned by the store
// @Tags todo-items
// @Accept json
// @Produce json
// @Param todoItem body model.CreateTodoItemDTO true "Todo item creation data"
// @Success 201 {object} model.TodoItemDTO "The created todo item"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems [post]
func (controller *TodoItemController) Create(c echo.Context) error {
	var dto model.CreateTodoItemDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest,
			map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	created, err := controller.useCase.Create(dto)
	if err != nil {
		return mapDomainError(c, err)
	}

	location := fmt.Sprintf("%s/%d", strings.TrimRight(c.Request().URL.Path, "/"), created.ID)
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, created)
}

// UpdateByID godoc
// @Summary Update a todo item
// @Description Replace every updatable field of an existing todo item
// @Tags todo-items
// @Accept json
// @Produce json
// @Param id path int true "Todo item id"
// @Param todoItem body model.UpdateTodoItemDTO true "Todo item update data"
// @Success 204 "Todo item updated"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Todo item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems/{id} [put]
func (controller *TodoItemController) UpdateByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return mapDomainError(c, err)
	}

	var dto model.UpdateTodoItemDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest,
			map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	if err := controller.useCase.UpdateByID(id, dto); err != nil {
		return mapDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PatchByID godoc
// @Summary Partially update a todo item
// @Description Apply an RFC 6902 patch document to an existing todo item
// @Tags todo-items
// @Accept json
// @Produce json
// @Param id path int true "Todo item id"
// @Param patch body []map[string]any true "JSON patch operations"
// @Success 204 "Todo item updated"
// @Failure 400 {object} map[string]string "Patch or validation failure"
// @Failure 404 {object} map[string]string "Todo item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems/{id} [patch]
func (controller *TodoItemController) PatchByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return mapDomainError(c, err)
	}

	patchDocument, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			map[string]string{"error": msg.GetMessage("app.invalid-body")})
	}

	if err := controller.useCase.PatchByID(id, patchDocument); err != nil {
		return mapDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteByID godoc
// @Summary Delete a todo item
// @Description Delete a todo item by its id
// @Tags todo-items
// @Accept json
// @Produce json
// @Param id path int true "Todo item id"
// @Success 204 "Todo item deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Todo item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems/{id} [delete]
func (controller *TodoItemController) DeleteByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return mapDomainError(c, err)
	}

	if err := controller.useCase.DeleteByID(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll godoc
// @Summary Delete all todo items
// @Description Remove every stored todo item
// @Tags todo-items
// @Accept json
// @Produce json
// @Success 204 "All todo items deleted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /TodoItems [delete]
func (controller *TodoItemController) DeleteAll(c echo.Context) error {
	if err := controller.useCase.DeleteAll(); err != nil {
		return mapDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID reads the id path parameter, reporting a validation error for
// values that are not valid integers.
func parseID(c echo.Context) (int64, error) {
	id, err := numberutils.ToInt64WithError(c.Param("id"))
	if err != nil {
		return 0, model.NewValidationError(msg.GetMessage("todo-item.error.invalid-id"))
	}
	return id, nil
}
