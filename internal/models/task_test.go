package models

import "testing"

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want Priority
	}{
		{"none", PriorityNone},
		{"easy", PriorityEasy},
		{"medium", PriorityMedium},
		{"hard", PriorityHard},
		{"  hard  ", PriorityHard},
		{"MEDIUM", PriorityMedium},
		{"Easy", PriorityEasy},
	}
	for _, c := range cases {
		got, err := ParsePriority(c.in)
		if err != nil {
			t.Errorf("ParsePriority(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParsePriorityRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "urgent", "high", "1", "🔴"} {
		if _, err := ParsePriority(in); err == nil {
			t.Errorf("ParsePriority(%q) expected an error", in)
		}
	}
}

func TestPriorityIcon(t *testing.T) {
	if PriorityHard.Icon() == PriorityEasy.Icon() {
		t.Error("expected distinct icons for distinct priorities")
	}
	if PriorityNone.Icon() == "" {
		t.Error("expected a fallback icon for the none priority")
	}
}
