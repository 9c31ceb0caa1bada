package ai

import (
	"strings"
	"testing"

	"planbot/internal/models"
)

func fullProfile() models.Profile {
	return models.Profile{
		Name:              "Anna",
		Age:               29,
		Gender:            "Female",
		Weight:            62.5,
		Height:            168,
		FitnessLevel:      "Intermediate",
		Goal:              "Weight Loss",
		TrainingDays:      4,
		SessionDuration:   45,
		TargetAreas:       []string{"Core & Abs", "Legs & Glutes"},
		Equipment:         []string{"Dumbbells", "Resistance Bands"},
		Preferences:       []string{"HIIT", "Strength Training"},
		HealthLimitations: "Knee pain",
		ExercisesToAvoid:  "Deep squats",
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	prompt := BuildPlanPrompt(fullProfile())

	wantParts := []string{
		"Create a comprehensive, personalized 4-day workout plan",
		"- Name: Anna",
		"- Age: 29 years",
		"- Gender: Female",
		"- Weight: 62.5",
		"- Height: 168",
		"- Current Fitness Level: Intermediate",
		"- Primary Fitness Goal: Weight Loss",
		"- Training Days per Week: 4",
		"- Session Duration: 45 minutes",
		"- Preferred Exercise Types: HIIT, Strength Training",
		"- Available Equipment: Dumbbells, Resistance Bands",
		"- Target Areas: Core & Abs, Legs & Glutes",
		"- Health Limitations: Knee pain",
		"- Exercises to Avoid: Deep squats",
		`"workout_duration": 45,`,
		`"superset_indicator": "None or paired exercise name"`,
		"- Beginner: 8-12 reps, lighter weights, more rest",
		"12. Focus on target areas if specified",
		"Workout Type Distribution for 4 days:",
		"- Focus on Weight Loss with HIIT, Strength Training preferences",
	}
	for _, want := range wantParts {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPlanPrompt_OptionalBlocks(t *testing.T) {
	p := fullProfile()
	p.Name = ""
	p.Weight = 0
	p.Equipment = nil
	p.TargetAreas = nil
	p.Preferences = nil
	p.HealthLimitations = ""
	p.ExercisesToAvoid = ""

	prompt := BuildPlanPrompt(p)

	if !strings.Contains(prompt, "- Name: User") {
		t.Error("empty name should fall back to User")
	}
	if !strings.Contains(prompt, "- Weight: N/A") {
		t.Error("unknown weight should render as N/A")
	}
	if strings.Contains(prompt, "Available Equipment:") {
		t.Error("equipment line should be omitted when the list is empty")
	}
	if strings.Contains(prompt, "Preferred Exercise Types:") {
		t.Error("preferences line should be omitted when the list is empty")
	}
	if strings.Contains(prompt, "Health Limitations:") {
		t.Error("limitations line should be omitted when empty")
	}
	if !strings.Contains(prompt, "- Exercises to Avoid: None") {
		t.Error("exercises to avoid should fall back to None")
	}
}

func TestSystemPromptRequiresJSON(t *testing.T) {
	if !strings.Contains(SystemPrompt, "valid JSON") {
		t.Error("system prompt must demand a JSON response")
	}
}
