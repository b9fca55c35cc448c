package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"todo-api/pkg/log"
	"todo-api/pkg/resource"
)

// Db is a plain database/sql handle over the same database as the ORM
// session, used by the health check.
var Db *sql.DB

func init() {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, username, password, database, schema)

	var err error
	Db, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
}
