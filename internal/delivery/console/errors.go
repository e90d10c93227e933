package console

import (
	"errors"

	"github.com/akovalev/go-task-tracker/internal/services"
)

// renderTaskError prints a short message for every recognized task
// error and returns nil so the menu keeps running. Anything else is
// unexpected and propagates to the caller unchanged.
func (h *handlerImpl) renderTaskError(err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		h.printf("❌ Task not found!\n")
	case errors.Is(err, services.ErrEmptyTitle):
		h.printf("❌ Task title cannot be empty!\n")
	case errors.Is(err, services.ErrInvalidPriority):
		h.printf("❌ Invalid priority. Choose: none, easy, medium, or hard.\n")
	case errors.Is(err, services.ErrNoIncompleteTasks):
		h.printf("🎉 All tasks are completed! Nothing to gamble.\n")
	default:
		return err
	}

	return nil
}
