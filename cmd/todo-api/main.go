package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todoitem"
	"todo-api/internal/infra/aws"
	gormdb "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqldb"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// @title Todo API
// @version 1.0
// @description CRUD todo list API with JWT authentication
// @BasePath /api
func main() {
	log.Info(msg.GetMessage("app.start"))

	jwtSecret := resource.GetString("app.security.jwt-secret")
	if jwtSecret == "" {
		log.Fatalf("app.security.jwt-secret must be configured")
	}

	// Init infra
	gormdb.Migrate()

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init gateways
	todoItemGateway := db.NewGormTodoItemGateway(gormdb.Db)
	userGateway := db.NewGormUserGateway(gormdb.Db)
	healthGateway := db.NewSQLHealthDBGateway(sqldb.Db)

	// Optional queue sender for todo item change events
	var sender queue.Sender
	eventsQueue := resource.GetString("app.cloud.events-queue")
	if eventsQueue != "" {
		cfg, err := aws.LoadConfig(context.Background())
		if err != nil {
			log.Fatalf("Failed to load AWS configuration: %v", err)
		}
		sender = aws.NewSQSSenderAdapter(aws.NewSQSClient(cfg))
	}

	// Init use cases
	todoItemUseCase := todoitem.NewTodoItemUseCase(todoItemGateway, sender, eventsQueue)
	authUseCase := auth.NewAuthUseCase(userGateway, []byte(jwtSecret))
	healthUseCase := health.NewHealthUseCase(healthGateway)

	// Init controllers
	todoItemController := controller.NewTodoItemController(api, todoItemUseCase)
	authController := controller.NewAuthenticationController(api, authUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init routes
	var todoItemMiddlewares []echo.MiddlewareFunc
	if resource.GetBool("app.security.enabled") {
		todoItemMiddlewares = append(todoItemMiddlewares, middleware.BearerAuth(authUseCase))
	}

	var authMiddlewares []echo.MiddlewareFunc
	if resource.GetBool("app.redis.enabled") {
		redisConfig := redis.DefaultConfig()
		redisConfig.Host = resource.GetString("app.redis.host")
		redisConfig.Port = resource.GetInt("app.redis.port")
		redisConfig.Password = resource.GetString("app.redis.password")
		redisConfig.Database = resource.GetInt("app.redis.database")

		authMiddlewares = append(authMiddlewares, middleware.RateLimit(
			redis.NewClient(redisConfig),
			resource.GetInt("app.redis.auth-rate-limit.max-requests"),
			resource.GetDuration("app.redis.auth-rate-limit.window"),
		))
	}

	todoItemController.InitTodoItemRoutes(todoItemMiddlewares...)
	authController.InitAuthenticationRoutes(authMiddlewares...)
	healthController.InitHealthRoutes()

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init schedule
	if resource.GetBool("app.todo-item.purge.enabled") {
		scheduler := schedule.NewTodoItemScheduler(todoItemUseCase)
		scheduler.InitTodoItemScheduleTasks()
	}

	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
