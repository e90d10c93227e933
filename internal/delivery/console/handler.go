package console

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/akovalev/go-task-tracker/internal/services"
)

type Handler interface {
	// Run drives the numbered menu until the user exits or input
	// reaches EOF. It returns only unexpected storage or input
	// failures; every recognized task error is rendered in place.
	Run(ctx context.Context) error

	HandleAddTask(ctx context.Context) error
	HandleListTasks(ctx context.Context) error
	HandleCompleteTask(ctx context.Context) error
	HandleDeleteTask(ctx context.Context) error
	HandleSetPriority(ctx context.Context) error
	HandleEditTask(ctx context.Context) error
	HandleGamble(ctx context.Context) error
	HandleStats(ctx context.Context) error
	HandleSearchByPriority(ctx context.Context) error
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
	in     *bufio.Reader
	out    io.Writer
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	in io.Reader,
	out io.Writer,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
		in:     bufio.NewReader(in),
		out:    out,
	}
}
