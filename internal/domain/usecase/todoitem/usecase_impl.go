package todoitem

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/mapper"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const maxFieldLength = 100

type todoItemUseCase struct {
	gateway     db.TodoItemGateway
	sender      queue.Sender
	eventsQueue string
}

// NewTodoItemUseCase builds the todo item use case. The sender may be nil,
// in which case no change events are published.
func NewTodoItemUseCase(gateway db.TodoItemGateway, sender queue.Sender, eventsQueue string) UseCase {
	return &todoItemUseCase{
		gateway:     gateway,
		sender:      sender,
		eventsQueue: eventsQueue,
	}
}

func (uc *todoItemUseCase) FindAll() ([]model.TodoItemDTO, error) {
	items, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}
	return mapper.ToTodoItemDTOs(items), nil
}

// FindFiltered trims both filters before matching. With both empty it
// behaves as FindAll.
func (uc *todoItemUseCase) FindFiltered(task string, search string) ([]model.TodoItemDTO, error) {
	items, err := uc.gateway.FindFiltered(strings.TrimSpace(task), strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	return mapper.ToTodoItemDTOs(items), nil
}

func (uc *todoItemUseCase) FindByID(id int64) (*model.TodoItemDTO, error) {
	item, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, model.NewNotFoundError(msg.GetMessage("todo-item.error.not-exists", id))
	}

	dto := mapper.ToTodoItemDTO(*item)
	return &dto, nil
}

func (uc *todoItemUseCase) Create(dto model.CreateTodoItemDTO) (*model.TodoItemDTO, error) {
	if err := validateFields(dto.Task, dto.Description); err != nil {
		return nil, err
	}

	created, err := uc.gateway.Create(mapper.FromCreateTodoItemDTO(dto))
	if err != nil {
		return nil, err
	}

	uc.publishEvent(model.TodoItemCreated, created.ID, created.Task)

	createdDTO := mapper.ToTodoItemDTO(*created)
	return &createdDTO, nil
}

// UpdateByID replaces every updatable field, so only existence of the row is
// checked before the save; the stored values are never read.
func (uc *todoItemUseCase) UpdateByID(id int64, dto model.UpdateTodoItemDTO) error {
	if err := validateFields(dto.Task, dto.Description); err != nil {
		return err
	}

	exists, err := uc.gateway.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return model.NewNotFoundError(msg.GetMessage("todo-item.error.not-exists", id))
	}

	item := entity.TodoItem{ID: id}
	mapper.ApplyUpdateTodoItemDTO(dto, &item)

	if _, err := uc.gateway.Save(item); err != nil {
		return err
	}

	uc.publishEvent(model.TodoItemUpdated, item.ID, item.Task)
	return nil
}

// PatchByID applies an RFC 6902 patch document to the updatable projection
// of the item, validates the result and persists it.
func (uc *todoItemUseCase) PatchByID(id int64, patchDocument []byte) error {
	item, err := uc.gateway.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return model.NewNotFoundError(msg.GetMessage("todo-item.error.not-exists", id))
	}

	patch, err := jsonpatch.DecodePatch(patchDocument)
	if err != nil {
		return model.NewValidationError(msg.GetMessage("todo-item.error.invalid-patch", err))
	}

	updateDTO := mapper.ToUpdateTodoItemDTO(*item)
	original, err := json.Marshal(updateDTO)
	if err != nil {
		return err
	}

	patched, err := patch.Apply(original)
	if err != nil {
		return model.NewValidationError(msg.GetMessage("todo-item.error.invalid-patch", err))
	}

	updateDTO = model.UpdateTodoItemDTO{}
	if err := json.Unmarshal(patched, &updateDTO); err != nil {
		return model.NewValidationError(msg.GetMessage("todo-item.error.invalid-patch", err))
	}

	if err := validateFields(updateDTO.Task, updateDTO.Description); err != nil {
		return err
	}

	mapper.ApplyUpdateTodoItemDTO(updateDTO, item)

	if _, err := uc.gateway.Save(*item); err != nil {
		return err
	}

	uc.publishEvent(model.TodoItemUpdated, item.ID, item.Task)
	return nil
}

func (uc *todoItemUseCase) DeleteByID(id int64) error {
	item, err := uc.gateway.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return model.NewNotFoundError(msg.GetMessage("todo-item.error.not-exists", id))
	}

	if err := uc.gateway.DeleteByID(id); err != nil {
		return err
	}

	uc.publishEvent(model.TodoItemDeleted, item.ID, item.Task)
	return nil
}

func (uc *todoItemUseCase) DeleteAll() error {
	if err := uc.gateway.DeleteAll(); err != nil {
		return err
	}

	uc.publishEvent(model.TodoItemCleared, 0, "")
	return nil
}

// PurgeCompleted removes completed items whose task timestamp fell out of
// the retention window.
func (uc *todoItemUseCase) PurgeCompleted(retention time.Duration) (int64, error) {
	return uc.gateway.DeleteCompletedBefore(time.Now().Add(-retention))
}

// validateFields enforces the create/update DTO rules: task required, task
// and description at most 100 characters.
func validateFields(task string, description *string) error {
	if strings.TrimSpace(task) == "" {
		return model.NewValidationError(msg.GetMessage("todo-item.error.empty-task"))
	}
	if len(task) > maxFieldLength {
		return model.NewValidationError(msg.GetMessage("todo-item.error.task-too-long", maxFieldLength))
	}
	if description != nil && len(*description) > maxFieldLength {
		return model.NewValidationError(msg.GetMessage("todo-item.error.description-too-long", maxFieldLength))
	}
	return nil
}

// publishEvent is a best effort side channel: failures are logged, never
// surfaced to the caller.
func (uc *todoItemUseCase) publishEvent(eventType model.TodoItemEventType, itemID int64, task string) {
	if uc.sender == nil || uc.eventsQueue == "" {
		return
	}

	event := model.TodoItemEvent{
		Type:      eventType,
		ItemID:    itemID,
		Task:      task,
		Timestamp: time.Now(),
	}
	if err := uc.sender.SendMessage(context.Background(), uc.eventsQueue, event); err != nil {
		log.Errorf(msg.GetMessage("todo-item.event.publish-failed", string(eventType), err))
	}
}
