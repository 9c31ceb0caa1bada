package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"planbot/internal/models"
)

var testProfile = models.Profile{
	Name:            "Anna",
	Age:             29,
	Gender:          "Female",
	Weight:          62.5,
	Height:          168,
	FitnessLevel:    "Intermediate",
	Goal:            "Weight Loss",
	TrainingDays:    4,
	SessionDuration: 45,
	TargetAreas:     []string{"Core & Abs", "Legs & Glutes"},
	Equipment:       []string{"Dumbbells"},
	Preferences:     []string{"HIIT", "Strength Training"},
}

var testDays = []models.Day{
	{
		Number:   1,
		Title:    "Day 1 - Full Body",
		Type:     "Strength Training",
		Duration: 45,
		Exercises: []models.PlanExercise{
			{
				Name:         "Goblet Squat",
				Type:         "Compound",
				Equipment:    "Dumbbells",
				TargetMuscle: "Legs",
				Sets:         3,
				Reps:         "10-12",
				Tempo:        "2-1-2",
				RestTime:     "60s",
				Weight:       "12kg",
				Breathing:    "Exhale on push",
				Superset:     "None",
			},
			{
				Name:     "Plank",
				Sets:     3,
				RestTime: "30s",
				Superset: "None",
			},
		},
	},
	{
		Number:   2,
		Title:    "Day 2 - HIIT",
		Type:     "HIIT",
		Duration: 40,
		Exercises: []models.PlanExercise{
			{Name: "Burpees", Sets: 4, Reps: "12", RestTime: "45s", Superset: "None"},
		},
	},
}

var testTime = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func TestToJSON(t *testing.T) {
	out, err := ToJSON(testProfile, testDays, testTime)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var doc struct {
		WorkoutPlan struct {
			PlanName string `json:"plan_name"`
			MetaData struct {
				Name        string   `json:"name"`
				Weight      float64  `json:"weight"`
				Preferences []string `json:"workout_preferences"`
			} `json:"meta_data"`
			Days []struct {
				Day            string `json:"day"`
				TotalExercises int    `json:"total_exercises"`
				Exercises      []struct {
					Name       string `json:"exercise_name"`
					Parameters struct {
						TotalSets int    `json:"total_sets"`
						Reps      string `json:"reps"`
						Superset  string `json:"superset_indicator"`
					} `json:"parameters"`
				} `json:"exercises"`
			} `json:"days"`
			Summary struct {
				TotalWorkoutDays int `json:"total_workout_days"`
				TotalExercises   int `json:"total_exercises"`
				TotalDuration    int `json:"total_weekly_duration_minutes"`
				AverageDuration  int `json:"average_duration_per_session"`
			} `json:"weekly_summary"`
			Audit struct {
				CreatedBy string  `json:"created_by"`
				CreatedOn string  `json:"created_on"`
				UpdatedBy *string `json:"updated_by"`
			} `json:"audit_info"`
		} `json:"workout_plan"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	plan := doc.WorkoutPlan
	if plan.PlanName != "4-Day Weight Loss Workout Plan" {
		t.Errorf("plan_name = %q, want %q", plan.PlanName, "4-Day Weight Loss Workout Plan")
	}
	if plan.MetaData.Name != "Anna" || plan.MetaData.Weight != 62.5 {
		t.Errorf("meta_data = %+v", plan.MetaData)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("days len = %d, want 2", len(plan.Days))
	}
	if plan.Days[0].Day != "Day 1 - Full Body" {
		t.Errorf("days[0].day = %q, want %q", plan.Days[0].Day, "Day 1 - Full Body")
	}
	if plan.Days[0].TotalExercises != 2 {
		t.Errorf("days[0].total_exercises = %d, want 2", plan.Days[0].TotalExercises)
	}
	squat := plan.Days[0].Exercises[0]
	if squat.Parameters.TotalSets != 3 || squat.Parameters.Reps != "10-12" {
		t.Errorf("parameters = %+v", squat.Parameters)
	}
	if squat.Parameters.Superset != "None" {
		t.Errorf("superset_indicator = %q, want %q", squat.Parameters.Superset, "None")
	}

	sum := plan.Summary
	if sum.TotalWorkoutDays != 2 || sum.TotalExercises != 3 {
		t.Errorf("weekly_summary = %+v", sum)
	}
	if sum.TotalDuration != 85 {
		t.Errorf("total_weekly_duration_minutes = %d, want 85", sum.TotalDuration)
	}
	// round(85/2) = 43
	if sum.AverageDuration != 43 {
		t.Errorf("average_duration_per_session = %d, want 43", sum.AverageDuration)
	}

	if plan.Audit.CreatedBy != "AI Workout Plan Generator" {
		t.Errorf("created_by = %q", plan.Audit.CreatedBy)
	}
	if plan.Audit.CreatedOn != "2025-03-14T10:30:00Z" {
		t.Errorf("created_on = %q", plan.Audit.CreatedOn)
	}
	if plan.Audit.UpdatedBy != nil {
		t.Errorf("updated_by = %v, want null", *plan.Audit.UpdatedBy)
	}
}

func TestToJSON_EmptySlicesNotNull(t *testing.T) {
	profile := testProfile
	profile.Preferences = nil
	profile.Equipment = nil
	profile.TargetAreas = nil

	out, err := ToJSON(profile, nil, testTime)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if strings.Contains(out, `"workout_preferences": null`) {
		t.Error("workout_preferences serialized as null, want []")
	}
	if !strings.Contains(out, `"average_duration_per_session": 0`) {
		t.Error("average_duration_per_session should be 0 for an empty plan")
	}
}

func TestToText(t *testing.T) {
	out := ToText(testProfile, testDays, testTime)

	wantLines := []string{
		"💪 PERSONALIZED WORKOUT PLAN",
		"👤 PROFILE SUMMARY:",
		"Name: Anna",
		"Age: 29 years",
		"Gender: Female",
		"Weight: 62.5 kg",
		"Height: 168 cm",
		"Fitness Goal: Weight Loss",
		"Training Days: 4 days/week",
		"Session Duration: 45 minutes",
		"Workout Preferences: HIIT, Strength Training",
		"Available Equipment: Dumbbells",
		"Target Areas: Core & Abs, Legs & Glutes",
		"🏋️ Day 1 - Full Body",
		"Workout Type: Strength Training",
		"💪 GOBLET SQUAT",
		"Target Muscles: Legs",
		"Parameters: Reps: 10-12 | Rest: 60s | Weight: 12kg | Tempo: 2-1-2",
		"Breathing: Exhale on push",
		"💪 PLANK",
		"Parameters: Rest: 30s",
		"Generated on: 2025-03-14 10:30:00",
		"Generated by: AI Workout Plan Generator",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want+"\n") && !strings.HasSuffix(out, want) {
			t.Errorf("output missing line %q", want)
		}
	}

	if strings.Contains(out, "Health Limitations:") {
		t.Error("empty health limitations should be omitted")
	}
	if !strings.HasPrefix(out, strings.Repeat("=", 70)+"\n") {
		t.Error("output should start with a banner line")
	}
	if !strings.HasSuffix(out, strings.Repeat("=", 70)) {
		t.Error("output should end with a banner line")
	}
}

func TestToText_MissingOptionalFields(t *testing.T) {
	profile := models.Profile{
		Name:            "Oleg",
		Age:             40,
		Gender:          "Male",
		FitnessLevel:    "Beginner",
		Goal:            "General Fitness",
		TrainingDays:    3,
		SessionDuration: 30,
	}

	out := ToText(profile, nil, testTime)

	if !strings.Contains(out, "Weight: N/A kg\n") {
		t.Error("unknown weight should render as N/A")
	}
	if !strings.Contains(out, "Height: N/A cm\n") {
		t.Error("unknown height should render as N/A")
	}
	if strings.Contains(out, "Workout Preferences:") {
		t.Error("empty preferences should be omitted")
	}
}
