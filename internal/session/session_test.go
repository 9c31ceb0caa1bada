package session

import (
	"testing"
	"time"

	"planbot/clients/ai"
	"planbot/internal/models"
)

func TestResetPlanKeepsLedger(t *testing.T) {
	s := New()

	s.Ledger.Record("Workout Plan Generation", 150, 300)
	s.ResetPlan()
	s.Ledger.Record("Workout Plan Generation", 100, 200)

	totals := s.Ledger.Totals()
	if totals.Requests != 2 {
		t.Errorf("Totals().Requests = %d, want 2", totals.Requests)
	}
	if totals.InputTokens != 250 {
		t.Errorf("Totals().InputTokens = %d, want 250", totals.InputTokens)
	}
	if totals.OutputTokens != 500 {
		t.Errorf("Totals().OutputTokens = %d, want 500", totals.OutputTokens)
	}
}

func TestResetPlanKeepsProfile(t *testing.T) {
	s := New()
	s.Profile = models.Profile{Name: "Anna", Age: 29}
	s.RawPlan = `{"workout_plan": {}}`
	s.Days = []models.Day{{Number: 1, Title: "Day 1"}}
	s.LatestUsage = ai.TokenUsage{InputTokens: 10, OutputTokens: 20}
	s.GenerationTime = 3 * time.Second

	s.ResetPlan()

	if s.Profile.Name != "Anna" || s.Profile.Age != 29 {
		t.Errorf("Profile after ResetPlan = %+v, want unchanged", s.Profile)
	}
	if s.HasPlan() {
		t.Error("HasPlan() after ResetPlan = true, want false")
	}
	if s.RawPlan != "" || s.LatestUsage != (ai.TokenUsage{}) || s.GenerationTime != 0 {
		t.Error("generation fields are not cleared by ResetPlan")
	}
}
