package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTodoItemGateway struct {
	DB *gorm.DB
}

var _ TodoItemGateway = (*GormTodoItemGateway)(nil)

func NewGormTodoItemGateway(db *gorm.DB) *GormTodoItemGateway {
	return &GormTodoItemGateway{DB: db}
}

func (gateway *GormTodoItemGateway) FindAll() ([]entity.TodoItem, error) {
	items := make([]entity.TodoItem, 0)
	if err := gateway.DB.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (gateway *GormTodoItemGateway) FindFiltered(task string, search string) ([]entity.TodoItem, error) {
	if task == "" && search == "" {
		return gateway.FindAll()
	}

	query := gateway.DB
	if task != "" {
		query = query.Where("task = ?", task)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("task LIKE ? OR description LIKE ?", pattern, pattern)
	}

	items := make([]entity.TodoItem, 0)
	if err := query.Order("task asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (gateway *GormTodoItemGateway) FindByID(id int64) (*entity.TodoItem, error) {
	var item entity.TodoItem
	err := gateway.DB.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistsByID checks for the id with a count query, without materializing the
// row.
func (gateway *GormTodoItemGateway) ExistsByID(id int64) (bool, error) {
	var count int64
	err := gateway.DB.Model(&entity.TodoItem{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gateway *GormTodoItemGateway) Create(item entity.TodoItem) (*entity.TodoItem, error) {
	if err := gateway.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Save persists an in-place mutation of a previously fetched item. There is
// no concurrency token: the last writer wins.
func (gateway *GormTodoItemGateway) Save(item entity.TodoItem) (*entity.TodoItem, error) {
	if err := gateway.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (gateway *GormTodoItemGateway) DeleteByID(id int64) error {
	return gateway.DB.Delete(&entity.TodoItem{}, id).Error
}

func (gateway *GormTodoItemGateway) DeleteAll() error {
	return gateway.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entity.TodoItem{}).Error
}

// DeleteCompletedBefore removes completed items whose task timestamp is older
// than the cutoff and returns how many rows were removed.
func (gateway *GormTodoItemGateway) DeleteCompletedBefore(cutoff time.Time) (int64, error) {
	result := gateway.DB.
		Where("is_complete = ? AND task_timestamp IS NOT NULL AND task_timestamp < ?", true, cutoff).
		Delete(&entity.TodoItem{})
	return result.RowsAffected, result.Error
}
