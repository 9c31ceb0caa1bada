package bot

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"planbot/clients/ai"
	"planbot/internal/models"
	"planbot/internal/session"
)

func TestRenderDay(t *testing.T) {
	day := models.Day{
		Number:   1,
		Title:    "Day 1 - Upper Body",
		Type:     "Strength Training",
		Duration: 45,
		Exercises: []models.PlanExercise{
			{
				Name:              "Push Ups",
				Sets:              3,
				Reps:              "10-12",
				RestTime:          "60s",
				EstimatedDuration: 4.65,
				CaloriesBurned:    20.3,
			},
		},
	}

	out := renderDay(day, 70)

	for _, want := range []string{
		"🏋️ Day 1 - Upper Body",
		"Type: Strength Training | Duration: 45 min",
		"1. Push Ups",
		"3 sets | 10-12 reps | rest 60s",
		"~4.7 min, ~20.3 kcal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderDay() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderDay_NoWeight(t *testing.T) {
	day := models.Day{
		Title: "Day 1",
		Type:  "Cardio",
		Exercises: []models.PlanExercise{
			{Name: "Running", Sets: 1, EstimatedDuration: 20},
		},
	}

	out := renderDay(day, 0)
	if strings.Contains(out, "kcal") {
		t.Errorf("renderDay() without weight should omit calories:\n%s", out)
	}
}

func TestRenderWeeklySummary(t *testing.T) {
	profile := models.Profile{Weight: 70}
	days := []models.Day{
		{
			Duration: 45,
			Exercises: []models.PlanExercise{
				{Name: "A", CaloriesBurned: 100.5},
				{Name: "B", CaloriesBurned: 50.0},
			},
		},
		{
			Duration:  30,
			Exercises: []models.PlanExercise{{Name: "C", CaloriesBurned: 80.0}},
		},
	}

	out := renderWeeklySummary(profile, days)

	for _, want := range []string{
		"Workout days: 2",
		"Total exercises: 3",
		"Total duration: 75 min",
		"Estimated calories: 230.5 kcal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderWeeklySummary() missing %q in:\n%s", want, out)
		}
	}
}

func TestInstallPlan(t *testing.T) {
	s := session.New()
	s.Profile = models.Profile{Weight: 70}

	raw := `{"workout_plan": {"day_1": {"title": "Day 1", "exercises": [{"exercise_name": "Push Ups"}]}}}`
	if err := installPlan(s, raw, ai.TokenUsage{InputTokens: 100, OutputTokens: 200}, 2*time.Second); err != nil {
		t.Fatalf("installPlan() error = %v", err)
	}

	if len(s.Days) != 1 || s.Days[0].Title != "Day 1" {
		t.Errorf("Days = %+v, want one parsed day", s.Days)
	}
	if s.RawPlan != raw {
		t.Errorf("RawPlan = %q, want stored response", s.RawPlan)
	}
	if s.LatestUsage.InputTokens != 100 || s.GenerationTime != 2*time.Second {
		t.Errorf("usage/time not recorded: %+v, %v", s.LatestUsage, s.GenerationTime)
	}
}

func TestInstallPlan_FailureKeepsPreviousPlan(t *testing.T) {
	s := session.New()
	s.Days = []models.Day{{Number: 1, Title: "Day 1 - Upper Body"}}

	err := installPlan(s, "not a json response", ai.TokenUsage{InputTokens: 5, OutputTokens: 7}, time.Second)
	if err == nil {
		t.Fatal("installPlan() with invalid JSON returned nil error")
	}

	// Прежний план остаётся доступным для экспорта
	if len(s.Days) != 1 || s.Days[0].Title != "Day 1 - Upper Body" {
		t.Errorf("Days after failed parse = %+v, want previous plan intact", s.Days)
	}
	// Сырой ответ сохраняется для просмотра
	if s.RawPlan != "not a json response" {
		t.Errorf("RawPlan = %q, want failed response stored", s.RawPlan)
	}
}

func TestTruncateRaw(t *testing.T) {
	if got := truncateRaw("short", 3900); got != "short" {
		t.Errorf("truncateRaw(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("a", 100)
	got := truncateRaw(long, 40)
	if !strings.HasSuffix(got, "... (truncated)") {
		t.Errorf("truncateRaw() = %q, want truncation marker", got)
	}
	if !strings.HasPrefix(got, strings.Repeat("a", 40)) {
		t.Errorf("truncateRaw() = %q, want 40 leading bytes kept", got)
	}

	// Граница обрезки не должна разрывать двухбайтовую руну
	cyrillic := strings.Repeat("я", 10)
	got = truncateRaw(cyrillic, 11)
	if !utf8.ValidString(got) {
		t.Errorf("truncateRaw() produced invalid UTF-8: %q", got)
	}
	if want := "яяяяя\n... (truncated)"; got != want {
		t.Errorf("truncateRaw() = %q, want %q", got, want)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 5, 0, time.UTC)

	if got := exportFilename("txt", now); got != "workout_plan_20250314_103005.txt" {
		t.Errorf("exportFilename(txt) = %q", got)
	}
	if got := exportFilename("json", now); got != "workout_plan_20250314_103005.json" {
		t.Errorf("exportFilename(json) = %q", got)
	}
}
