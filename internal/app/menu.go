package app

import (
	"context"
	"os"

	"github.com/akovalev/go-task-tracker/internal/delivery/console"
	"github.com/akovalev/go-task-tracker/internal/services"
)

// MustRunMenu wires the task service to the console delivery and
// blocks until the user exits. Storage failures outside the
// recognized task errors are unrecoverable and terminate the process.
func MustRunMenu() {
	taskService := services.NewTaskService(globalLogger, globalDB)
	handler := console.New(globalLogger, taskService, os.Stdin, os.Stdout)

	globalLogger.Info().Msg("starting menu loop")
	if err := handler.Run(context.Background()); err != nil {
		globalLogger.Error().
			Err(err).
			Msg("menu loop failed")
		panic(err)
	}
	globalLogger.Info().Msg("menu loop finished")
}
