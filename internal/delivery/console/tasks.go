package console

import (
	"context"

	"github.com/akovalev/go-task-tracker/internal/models"
	"github.com/akovalev/go-task-tracker/internal/services"
)

func (h *handlerImpl) HandleAddTask(ctx context.Context) error {
	title, err := h.prompt("Task title: ")
	if err != nil {
		return err
	}
	if title == "" {
		h.printf("❌ Task title cannot be empty!\n")
		return nil
	}

	description, err := h.prompt("Description (optional): ")
	if err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(ctx, services.CreateTaskParams{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return h.renderTaskError(err)
	}

	h.printf("✅ Task added: %s\n", task.Title)
	return nil
}

func (h *handlerImpl) HandleListTasks(ctx context.Context) error {
	tasks, err := h.tasks.GetTasks(ctx)
	if err != nil {
		return h.renderTaskError(err)
	}

	h.renderTaskList(tasks)
	return nil
}

func (h *handlerImpl) HandleCompleteTask(ctx context.Context) error {
	tasks, err := h.tasks.GetTasks(ctx)
	if err != nil {
		return h.renderTaskError(err)
	}
	h.renderTaskList(tasks)
	if len(tasks) == 0 {
		return nil
	}

	id, ok, err := h.promptTaskID("Enter task ID to complete: ")
	if err != nil || !ok {
		return err
	}

	if err := h.tasks.CompleteTask(ctx, id); err != nil {
		return h.renderTaskError(err)
	}

	h.printf("✅ Task %d marked as completed!\n", id)
	return nil
}

func (h *handlerImpl) HandleDeleteTask(ctx context.Context) error {
	tasks, err := h.tasks.GetTasks(ctx)
	if err != nil {
		return h.renderTaskError(err)
	}
	h.renderTaskList(tasks)
	if len(tasks) == 0 {
		return nil
	}

	id, ok, err := h.promptTaskID("Enter task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	if err := h.tasks.DeleteTask(ctx, id); err != nil {
		return h.renderTaskError(err)
	}

	h.printf("🗑️ Task %d deleted!\n", id)
	return nil
}

func (h *handlerImpl) HandleSetPriority(ctx context.Context) error {
	tasks, err := h.tasks.GetTasks(ctx)
	if err != nil {
		return h.renderTaskError(err)
	}
	if len(tasks) == 0 {
		h.printf("📋 No tasks yet!\n")
		return nil
	}

	h.printf("Which task do you want to set a priority for?\n")
	task, err := h.chooseTask(tasks)
	if err != nil || task == nil {
		return err
	}

	raw, err := h.prompt("Priority (none, easy, medium, hard): ")
	if err != nil {
		return err
	}
	priority, parseErr := models.ParsePriority(raw)
	if parseErr != nil {
		h.printf("❌ Invalid priority. Choose: none, easy, medium, or hard.\n")
		return nil
	}

	if err := h.tasks.SetTaskPriority(ctx, task.ID, priority); err != nil {
		return h.renderTaskError(err)
	}

	h.printf("✅ Priority %s set for task %d.\n", priority.Icon(), task.ID)
	return nil
}

func (h *handlerImpl) HandleEditTask(ctx context.Context) error {
	tasks, err := h.tasks.GetTasks(ctx)
	if err != nil {
		return h.renderTaskError(err)
	}
	if len(tasks) == 0 {
		h.printf("📋 No tasks yet!\n")
		return nil
	}

	task, err := h.chooseTask(tasks)
	if err != nil || task == nil {
		return err
	}

	field, err := h.prompt("What to change (title or description): ")
	if err != nil {
		return err
	}
	if field != "title" && field != "description" {
		h.printf("❌ Invalid field! Only 'title' or 'description' allowed.\n")
		return nil
	}

	value, err := h.prompt("Enter new " + field + ": ")
	if err != nil {
		return err
	}

	params := services.UpdateTaskParams{}
	switch field {
	case "title":
		if value == "" {
			h.printf("❌ Task title cannot be empty!\n")
			return nil
		}
		params.Title = &value
	case "description":
		params.Description = &value
	}

	if err := h.tasks.UpdateTask(ctx, task.ID, params); err != nil {
		return h.renderTaskError(err)
	}

	h.printf("✅ Task %d %s updated.\n", task.ID, field)
	return nil
}

func (h *handlerImpl) HandleGamble(ctx context.Context) error {
	for {
		task, err := h.tasks.PickRandomIncomplete(ctx)
		if err != nil {
			return h.renderTaskError(err)
		}

		h.printf("\n🎲 You got: %s\n", task.Title)

		accepted, rerolled, err := h.promptGambleChoice()
		if err != nil {
			return err
		}
		if rerolled {
			continue
		}
		if !accepted {
			h.printf("❌ Gamble canceled.\n")
			return nil
		}

		h.printf("✅ Selected: %s\n", task.Title)

		confirm, err := h.prompt("Mark it as completed right away? (y/n): ")
		if err != nil {
			return err
		}
		if confirm == "y" || confirm == "yes" {
			if err := h.tasks.CompleteTask(ctx, task.ID); err != nil {
				return h.renderTaskError(err)
			}
			h.printf("✅ Task %d marked as completed!\n", task.ID)
		}
		return nil
	}
}

// promptGambleChoice keeps asking until it gets yes, no, or cancel.
func (h *handlerImpl) promptGambleChoice() (accepted, rerolled bool, err error) {
	for {
		choice, err := h.prompt("Accept this task? (yes / no / cancel): ")
		if err != nil {
			return false, false, err
		}

		switch choice {
		case "yes":
			return true, false, nil
		case "no":
			return false, true, nil
		case "cancel":
			return false, false, nil
		default:
			h.printf("❌ Invalid choice. Type: yes, no, or cancel.\n")
		}
	}
}

func (h *handlerImpl) HandleStats(ctx context.Context) error {
	stats, err := h.tasks.Stats(ctx)
	if err != nil {
		return h.renderTaskError(err)
	}
	if stats.Total == 0 {
		h.printf("📋 No tasks yet!\n")
		return nil
	}

	completedPct := float64(stats.Completed) / float64(stats.Total) * 100
	pendingPct := 100 - completedPct

	h.printf("\n=== STATISTICS ===\n")
	h.printf("Total Tasks: %d\n", stats.Total)
	h.printf("Completed: %d (%.1f%%)\n", stats.Completed, completedPct)
	h.printf("Pending: %d (%.1f%%)\n\n", stats.Pending, pendingPct)

	for _, priority := range []models.Priority{
		models.PriorityNone,
		models.PriorityEasy,
		models.PriorityMedium,
		models.PriorityHard,
	} {
		h.printf("%s %s: %d tasks\n", priority.Icon(), priority, stats.ByPriority[priority])
	}
	return nil
}

func (h *handlerImpl) HandleSearchByPriority(ctx context.Context) error {
	raw, err := h.prompt("What is the priority (none, easy, medium, hard): ")
	if err != nil {
		return err
	}
	priority, parseErr := models.ParsePriority(raw)
	if parseErr != nil {
		h.printf("❌ Invalid priority. Choose: none, easy, medium, or hard.\n")
		return nil
	}

	tasks, err := h.tasks.SearchTasksByPriority(ctx, priority)
	if err != nil {
		return h.renderTaskError(err)
	}
	if len(tasks) == 0 {
		h.printf("📋 No %s tasks found!\n", priority)
		return nil
	}

	h.printf("\n%s %s tasks:\n", priority.Icon(), priority)
	h.renderTaskList(tasks)

	h.printf("\nSelect a task:\n")
	task, err := h.chooseTask(tasks)
	if err != nil {
		return err
	}
	if task == nil {
		h.printf("❌ No task selected.\n")
		return nil
	}

	h.printf("✅ You selected: %s\n", task.Title)
	return nil
}
