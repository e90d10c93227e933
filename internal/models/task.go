package models

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityEasy   Priority = "easy"
	PriorityMedium Priority = "medium"
	PriorityHard   Priority = "hard"
)

// ParsePriority maps a user-supplied token to a Priority.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityNone:
		return PriorityNone, nil
	case PriorityEasy:
		return PriorityEasy, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHard:
		return PriorityHard, nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

// Icon returns the glyph used when rendering the priority in the console.
// The stored value is always the lowercase token, never the glyph.
func (p Priority) Icon() string {
	switch p {
	case PriorityEasy:
		return "🟢"
	case PriorityMedium:
		return "🟡"
	case PriorityHard:
		return "🔴"
	default:
		return "⚪"
	}
}

type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	Priority    Priority
}
