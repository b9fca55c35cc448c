package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/log"
	"todo-api/pkg/resource"
)

var Db *gorm.DB

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)

	var err error
	Db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect Database: %v", err)
	}
}

// starterTasks are inserted once, on the first migration of an empty store.
var starterTasks = []string{
	"Go to the gym",
	"Learn something new",
	"Clean up the house",
}

// Migrate creates the schema and seeds the starter todo items when the
// table is empty.
func Migrate() {
	if err := Db.AutoMigrate(&entity.TodoItem{}, &entity.User{}); err != nil {
		log.Fatalf("Fail to migrate Database: %v", err)
	}

	var count int64
	if err := Db.Model(&entity.TodoItem{}).Count(&count).Error; err != nil {
		log.Fatalf("Fail to count todo items: %v", err)
	}
	if count > 0 {
		return
	}

	items := make([]entity.TodoItem, 0, len(starterTasks))
	for _, task := range starterTasks {
		items = append(items, entity.TodoItem{Task: task})
	}
	if err := Db.Create(&items).Error; err != nil {
		log.Fatalf("Fail to seed todo items: %v", err)
	}
}
