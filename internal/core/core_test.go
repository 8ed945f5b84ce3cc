package core

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"draft to review", StatusDraft, StatusNeedsReview, true},
		{"draft to approved", StatusDraft, StatusApproved, true},
		{"review to published", StatusNeedsReview, StatusPublished, true},
		{"published is terminal", StatusPublished, StatusApproved, false},
		{"no self transition", StatusApproved, StatusApproved, false},
		{"no backwards", StatusApproved, StatusDraft, false},
		{"unknown from", "BOGUS", StatusDraft, false},
		{"unknown to", StatusDraft, "BOGUS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusNeedsReview, StatusApproved, StatusPublished} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false, want true", s)
		}
	}
	if ValidStatus("SHIPPED") {
		t.Error("ValidStatus(SHIPPED) = true, want false")
	}
}
