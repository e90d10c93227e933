package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akovalev/go-task-tracker/internal/models"
)

func (h *handlerImpl) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(h.out, format, args...)
}

// prompt prints a label and reads one line, trimmed of surrounding
// whitespace. The error is non-nil only when input is exhausted or
// broken, which ends the session.
func (h *handlerImpl) prompt(label string) (string, error) {
	h.printf("%s", label)
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (h *handlerImpl) promptTaskID(label string) (int64, bool, error) {
	raw, err := h.prompt(label)
	if err != nil {
		return 0, false, err
	}

	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil || id <= 0 {
		h.printf("❌ Please enter a valid number!\n")
		return 0, false, nil
	}

	return id, true, nil
}

// chooseTask renders tasks as a 1-based list and lets the user pick
// one by position. A nil task with a nil error means the choice was
// invalid and a message has already been printed.
func (h *handlerImpl) chooseTask(tasks []models.Task) (*models.Task, error) {
	for i, task := range tasks {
		h.printf("%d- [%d] %s\n", i+1, task.ID, task.Title)
	}

	raw, err := h.prompt("Enter the number: ")
	if err != nil {
		return nil, err
	}

	num, convErr := strconv.Atoi(raw)
	if convErr != nil || num < 1 || num > len(tasks) {
		h.printf("❌ Invalid choice!\n")
		return nil, nil
	}

	return &tasks[num-1], nil
}

func (h *handlerImpl) renderTaskList(tasks []models.Task) {
	if len(tasks) == 0 {
		h.printf("📋 No tasks yet!\n")
		return
	}

	h.printf("\n📋 Your Tasks:\n")
	h.printf("%s\n", strings.Repeat("-", 60))
	for _, task := range tasks {
		status := "⬜"
		if task.Completed {
			status = "✅"
		}
		h.printf("%s [%d] %s %s\n", status, task.ID, task.Title, task.Priority.Icon())
		if task.Description != "" {
			h.printf("    Description: %s\n", task.Description)
		}
	}
	h.printf("%s\n", strings.Repeat("-", 60))
}
