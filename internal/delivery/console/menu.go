package console

import (
	"context"
	"errors"
	"io"
)

const exitChoice = "10"

const menuText = `
=== TODO APP ===
1. Add task
2. View tasks
3. Complete task
4. Delete task
5. Add priority to task
6. Edit task
7. Gamble a task
8. View statistics
9. Search tasks by priority
10. Exit
`

func (h *handlerImpl) Run(ctx context.Context) error {
	dispatch := map[string]func(context.Context) error{
		"1": h.HandleAddTask,
		"2": h.HandleListTasks,
		"3": h.HandleCompleteTask,
		"4": h.HandleDeleteTask,
		"5": h.HandleSetPriority,
		"6": h.HandleEditTask,
		"7": h.HandleGamble,
		"8": h.HandleStats,
		"9": h.HandleSearchByPriority,
	}

	for {
		h.printf("%s", menuText)

		choice, err := h.prompt("\nChoose option (1-10): ")
		if err != nil {
			// Exhausted input behaves like a clean exit.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if choice == exitChoice {
			h.printf("👋 Goodbye!\n")
			return nil
		}

		handle, ok := dispatch[choice]
		if !ok {
			h.printf("❌ Invalid choice!\n")
			continue
		}

		if err := handle(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			h.logger.Error().
				Err(err).
				Str("choice", choice).
				Msg("menu action failed")
			return err
		}
	}
}
