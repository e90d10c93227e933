package app

import (
	"context"
	"database/sql"

	"github.com/akovalev/go-task-tracker/internal/config"
	"github.com/akovalev/go-task-tracker/internal/storage"
)

var globalDB *sql.DB

func MustOpenSQLite() {
	cfg := config.Global().SQLite

	db, err := storage.Open(context.Background(), cfg.Path, cfg.BusyTimeout)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open sqlite")
		panic(err)
	}
	globalDB = db

	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("opened sqlite")
}

func CloseSQLite() {
	if err := globalDB.Close(); err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close sqlite")
		return
	}
	globalLogger.Info().Msg("closed sqlite")
}
