// Package app wires the repository and service layers together.
package app

import (
	"database/sql"

	"github.com/kadyrovd/delo/internal/database"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// App holds all application services and provides dependency injection.
type App struct {
	TaskService taskservice.Service
}

// New creates a new App over an initialized database connection.
// This is the single entry point for creating the application container.
func New(db *sql.DB) *App {
	return &App{
		TaskService: taskservice.NewService(database.NewRepository(db)),
	}
}
