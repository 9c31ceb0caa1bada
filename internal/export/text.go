package export

import (
	"fmt"
	"strings"
	"time"

	"planbot/internal/models"
)

// ToText строит текстовую версию плана: шапка, сводка анкеты, дни с
// упражнениями и подвал с датой генерации.
func ToText(profile models.Profile, days []models.Day, now time.Time) string {
	var b strings.Builder
	banner := strings.Repeat("=", 70)

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}

	line(banner)
	line("💪 PERSONALIZED WORKOUT PLAN")
	line(banner)
	line("")

	line("👤 PROFILE SUMMARY:")
	line(strings.Repeat("-", 30))
	line("Name: %s", orNA(profile.Name))
	line("Age: %d years", profile.Age)
	line("Gender: %s", titleCase(profile.Gender))
	line("Weight: %s kg", numberOrNA(profile.Weight))
	line("Height: %s cm", numberOrNA(profile.Height))
	line("Fitness Goal: %s", orNA(profile.Goal))
	line("Fitness Level: %s", orNA(profile.FitnessLevel))
	line("Training Days: %d days/week", profile.TrainingDays)
	line("Session Duration: %d minutes", profile.SessionDuration)

	if len(profile.Preferences) > 0 {
		line("Workout Preferences: %s", strings.Join(profile.Preferences, ", "))
	}
	if len(profile.Equipment) > 0 {
		line("Available Equipment: %s", strings.Join(profile.Equipment, ", "))
	}
	if len(profile.TargetAreas) > 0 {
		line("Target Areas: %s", strings.Join(profile.TargetAreas, ", "))
	}
	if profile.HealthLimitations != "" {
		line("Health Limitations: %s", profile.HealthLimitations)
	}

	line("")
	line("")

	for _, day := range days {
		line(banner)
		line("🏋️ %s", day.Title)
		line("Workout Type: %s", day.Type)
		line("Duration: %d minutes", day.Duration)
		line(banner)
		line("")

		for _, ex := range day.Exercises {
			line("💪 %s", strings.ToUpper(ex.Name))
			line(strings.Repeat("-", 50))

			if ex.Type != "" {
				line("Type: %s", ex.Type)
			}
			if ex.TargetMuscle != "" {
				line("Target Muscles: %s", ex.TargetMuscle)
			}
			if ex.Equipment != "" {
				line("Equipment: %s", ex.Equipment)
			}

			var params []string
			if ex.Reps != "" {
				params = append(params, fmt.Sprintf("Reps: %s", ex.Reps))
			}
			if ex.RestTime != "" {
				params = append(params, fmt.Sprintf("Rest: %s", ex.RestTime))
			}
			if ex.Weight != "" {
				params = append(params, fmt.Sprintf("Weight: %s", ex.Weight))
			}
			if ex.Tempo != "" {
				params = append(params, fmt.Sprintf("Tempo: %s", ex.Tempo))
			}
			if len(params) > 0 {
				line("Parameters: %s", strings.Join(params, " | "))
			}

			if ex.Breathing != "" {
				line("Breathing: %s", ex.Breathing)
			}

			line("")
		}

		line("")
	}

	line(banner)
	line("Generated on: %s", now.Format("2006-01-02 15:04:05"))
	line("Generated by: AI Workout Plan Generator")
	b.WriteString(banner)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func numberOrNA(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}

func titleCase(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
