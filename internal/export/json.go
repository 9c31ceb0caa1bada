// Package export формирует выгрузки плана тренировок в JSON и текстовом виде.
package export

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"planbot/internal/models"
)

// Структуры выгрузки повторяют порядок полей итогового документа,
// поэтому ключи в JSON всегда идут в одном и том же порядке.

type exerciseParams struct {
	TotalSets int    `json:"total_sets"`
	Reps      string `json:"reps"`
	Tempo     string `json:"tempo"`
	RestTime  string `json:"rest_time"`
	Weight    string `json:"weight"`
	Speed     string `json:"speed_level"`
	Breathing string `json:"breathing_pattern"`
	Superset  string `json:"superset_indicator"`
}

type exerciseInfo struct {
	Name         string         `json:"exercise_name"`
	Type         string         `json:"exercise_type"`
	Equipment    string         `json:"equipment_required"`
	TargetMuscle string         `json:"target_muscle_group"`
	Parameters   exerciseParams `json:"parameters"`
}

type dayInfo struct {
	Day            string         `json:"day"`
	WorkoutType    string         `json:"workout_type"`
	Duration       int            `json:"workout_duration"`
	TotalExercises int            `json:"total_exercises"`
	Exercises      []exerciseInfo `json:"exercises"`
}

type metaData struct {
	Name              string   `json:"name"`
	Goal              string   `json:"goal"`
	FitnessLevel      string   `json:"fitness_level"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	Weight            float64  `json:"weight"`
	Height            float64  `json:"height"`
	Preferences       []string `json:"workout_preferences"`
	TrainingDays      int      `json:"training_days_per_week"`
	SessionDuration   int      `json:"session_duration"`
	Equipment         []string `json:"available_equipment"`
	TargetAreas       []string `json:"target_areas"`
	HealthLimitations string   `json:"health_limitations"`
	ExercisesToAvoid  string   `json:"exercises_to_avoid"`
	AdditionalNotes   string   `json:"additional_notes"`
}

type weeklySummary struct {
	TotalWorkoutDays int `json:"total_workout_days"`
	TotalExercises   int `json:"total_exercises"`
	TotalDuration    int `json:"total_weekly_duration_minutes"`
	AverageDuration  int `json:"average_duration_per_session"`
}

type auditInfo struct {
	CreatedBy string  `json:"created_by"`
	CreatedOn string  `json:"created_on"`
	UpdatedBy *string `json:"updated_by"`
	UpdatedOn *string `json:"updated_on"`
}

type planDocument struct {
	PlanName string        `json:"plan_name"`
	MetaData metaData      `json:"meta_data"`
	Days     []dayInfo     `json:"days"`
	Summary  weeklySummary `json:"weekly_summary"`
	Audit    auditInfo     `json:"audit_info"`
}

type planEnvelope struct {
	WorkoutPlan planDocument `json:"workout_plan"`
}

// ToJSON собирает полный JSON-документ плана с анкетой, сводкой недели
// и служебной информацией. Момент создания передаётся снаружи.
func ToJSON(profile models.Profile, days []models.Day, now time.Time) (string, error) {
	processedDays := make([]dayInfo, 0, len(days))
	totalExercises := 0
	totalDuration := 0

	for _, day := range days {
		exercises := make([]exerciseInfo, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			exercises = append(exercises, exerciseInfo{
				Name:         ex.Name,
				Type:         ex.Type,
				Equipment:    ex.Equipment,
				TargetMuscle: ex.TargetMuscle,
				Parameters: exerciseParams{
					TotalSets: ex.Sets,
					Reps:      ex.Reps,
					Tempo:     ex.Tempo,
					RestTime:  ex.RestTime,
					Weight:    ex.Weight,
					Speed:     ex.Speed,
					Breathing: ex.Breathing,
					Superset:  ex.Superset,
				},
			})
		}

		processedDays = append(processedDays, dayInfo{
			Day:            day.Title,
			WorkoutType:    day.Type,
			Duration:       day.Duration,
			TotalExercises: len(exercises),
			Exercises:      exercises,
		})

		totalExercises += len(day.Exercises)
		totalDuration += day.Duration
	}

	averageDuration := 0
	if len(days) > 0 {
		averageDuration = int(math.Round(float64(totalDuration) / float64(len(days))))
	}

	doc := planEnvelope{
		WorkoutPlan: planDocument{
			PlanName: fmt.Sprintf("%d-Day %s Workout Plan", profile.TrainingDays, profile.Goal),
			MetaData: metaData{
				Name:              profile.Name,
				Goal:              profile.Goal,
				FitnessLevel:      profile.FitnessLevel,
				Age:               profile.Age,
				Gender:            profile.Gender,
				Weight:            profile.Weight,
				Height:            profile.Height,
				Preferences:       ensureSlice(profile.Preferences),
				TrainingDays:      profile.TrainingDays,
				SessionDuration:   profile.SessionDuration,
				Equipment:         ensureSlice(profile.Equipment),
				TargetAreas:       ensureSlice(profile.TargetAreas),
				HealthLimitations: profile.HealthLimitations,
				ExercisesToAvoid:  profile.ExercisesToAvoid,
				AdditionalNotes:   profile.AdditionalNotes,
			},
			Days: processedDays,
			Summary: weeklySummary{
				TotalWorkoutDays: len(days),
				TotalExercises:   totalExercises,
				TotalDuration:    totalDuration,
				AverageDuration:  averageDuration,
			},
			Audit: auditInfo{
				CreatedBy: "AI Workout Plan Generator",
				CreatedOn: now.Format(time.RFC3339),
			},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации плана: %w", err)
	}
	return string(data), nil
}

// ensureSlice заменяет nil пустым списком, чтобы в JSON был [], а не null.
func ensureSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
