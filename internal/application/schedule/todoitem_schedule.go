package schedule

import (
	"github.com/robfig/cron/v3"

	"todo-api/internal/domain/usecase/todoitem"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// TodoItemScheduler periodically purges completed todo items that fell out
// of the configured retention window.
type TodoItemScheduler struct {
	cron    *cron.Cron
	useCase todoitem.UseCase
}

func NewTodoItemScheduler(useCase todoitem.UseCase) *TodoItemScheduler {
	return &TodoItemScheduler{cron: cron.New(), useCase: useCase}
}

// InitTodoItemScheduleTasks initializes todo item schedule tasks
func (scheduler *TodoItemScheduler) InitTodoItemScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.todo-item.purge.cron"), scheduler.PurgeCompleted)
	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

func (scheduler *TodoItemScheduler) PurgeCompleted() {
	log.Info(msg.GetMessage("todo-item.cron.start"))

	removed, err := scheduler.useCase.PurgeCompleted(resource.GetDuration("app.todo-item.purge.retention"))
	if err != nil {
		log.Error(msg.GetMessage("todo-item.cron.failed", err))
		return
	}

	log.Info(msg.GetMessage("todo-item.cron.end", removed))
}
