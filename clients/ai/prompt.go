package ai

import (
	"fmt"
	"strings"

	"planbot/internal/models"
)

// SystemPrompt - роль модели при генерации плана. Ответ обязан быть валидным JSON.
const SystemPrompt = "You are a certified personal trainer and exercise physiologist with over 15 years of experience in creating personalized workout plans. You specialize in strength training, cardiovascular fitness, functional movement, and injury prevention. Always provide specific exercise parameters including sets, reps, tempo, and rest periods. Always respond in valid JSON format."

// BuildPlanPrompt строит текст запроса к модели по анкете пользователя.
// Необязательные блоки (инвентарь, целевые зоны, ограничения) добавляются
// только если соответствующие поля заполнены.
func BuildPlanPrompt(p models.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a comprehensive, personalized %d-day workout plan based on the following information:\n\n", p.TrainingDays)

	b.WriteString("PERSONAL INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", valueOr(p.Name, "User"))
	fmt.Fprintf(&b, "- Age: %d years\n", p.Age)
	fmt.Fprintf(&b, "- Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "- Weight: %s\n", measurement(p.Weight))
	fmt.Fprintf(&b, "- Height: %s\n\n", measurement(p.Height))

	b.WriteString("FITNESS PROFILE:\n")
	fmt.Fprintf(&b, "- Current Fitness Level: %s\n", p.FitnessLevel)
	fmt.Fprintf(&b, "- Primary Fitness Goal: %s\n", p.Goal)
	fmt.Fprintf(&b, "- Training Days per Week: %d\n", p.TrainingDays)
	fmt.Fprintf(&b, "- Session Duration: %d minutes\n", p.SessionDuration)
	if len(p.Preferences) > 0 {
		fmt.Fprintf(&b, "- Preferred Exercise Types: %s\n", strings.Join(p.Preferences, ", "))
	}
	b.WriteString("\n")

	b.WriteString("EQUIPMENT & PREFERENCES:\n")
	if len(p.Equipment) > 0 {
		fmt.Fprintf(&b, "- Available Equipment: %s\n", strings.Join(p.Equipment, ", "))
	}
	if len(p.TargetAreas) > 0 {
		fmt.Fprintf(&b, "- Target Areas: %s\n", strings.Join(p.TargetAreas, ", "))
	}
	b.WriteString("\n")

	b.WriteString("HEALTH & LIMITATIONS:\n")
	if p.HealthLimitations != "" {
		fmt.Fprintf(&b, "- Health Limitations: %s\n", p.HealthLimitations)
	}
	fmt.Fprintf(&b, "- Exercises to Avoid: %s\n\n", valueOr(p.ExercisesToAvoid, "None"))

	b.WriteString("ADDITIONAL INFORMATION:\n")
	fmt.Fprintf(&b, "- Additional Notes: %s\n\n", valueOr(p.AdditionalNotes, "None"))

	b.WriteString("WORKOUT PLAN REQUIREMENTS:\n")
	b.WriteString("Create a detailed workout plan in JSON format that includes:\n")
	fmt.Fprintf(&b, "- Day-wise breakdown for %d workout days\n", p.TrainingDays)
	b.WriteString("- Each day should have a specific workout type (Strength, Cardio, Flexibility, HIIT/Circuit, etc.)\n")
	b.WriteString("- Exercise-level details for each workout\n")
	b.WriteString("- Progressive difficulty based on fitness level\n")
	b.WriteString("- Proper warm-up and cool-down exercises\n")
	b.WriteString("- Equipment requirements and alternatives\n\n")

	b.WriteString("Return the response in the following JSON structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"workout_plan\": {\n")
	b.WriteString("    \"day_1\": {\n")
	b.WriteString("      \"day_name\": \"Day 1 - Monday\",\n")
	b.WriteString("      \"workout_type\": \"Strength Training\",\n")
	fmt.Fprintf(&b, "      \"workout_duration\": %d,\n", p.SessionDuration)
	b.WriteString("      \"exercises\": [\n")
	b.WriteString("        {\n")
	b.WriteString("          \"exercise_name\": \"Exercise name\",\n")
	b.WriteString("          \"exercise_type\": \"Compound/Isolation/Warm-up/Cooldown\",\n")
	b.WriteString("          \"equipment_required\": \"Equipment needed or Bodyweight\",\n")
	b.WriteString("          \"target_muscle_group\": \"Primary muscle groups targeted\",\n")
	b.WriteString("          \"total_sets\": 1,\n")
	b.WriteString("          \"reps\": \"Number of repetitions or duration\",\n")
	b.WriteString("          \"tempo\": \"3-1-2 (3 sec down, 1 sec pause, 2 sec up)\",\n")
	b.WriteString("          \"rest_time\": \"Rest duration between sets (e.g., 60s)\",\n")
	b.WriteString("          \"weight\": \"Recommended weight based on fitness level\",\n")
	b.WriteString("          \"speed_level\": \"For cardio exercises: Slow/Moderate/Fast\",\n")
	b.WriteString("          \"breathing_pattern\": \"Inhale/exhale rhythm instructions\",\n")
	b.WriteString("          \"superset_indicator\": \"None or paired exercise name\"\n")
	b.WriteString("        }\n")
	b.WriteString("      ]\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "Continue this structure for all %d workout days.\n\n", p.TrainingDays)

	b.WriteString("Guidelines:\n")
	b.WriteString("1. Provide specific rep ranges appropriate for the fitness level:\n")
	b.WriteString("   - Beginner: 8-12 reps, lighter weights, more rest\n")
	b.WriteString("   - Intermediate: 10-15 reps, moderate intensity\n")
	b.WriteString("   - Advanced: 12-20 reps or advanced techniques\n")
	b.WriteString("2. Include proper progression and variety across days\n")
	b.WriteString("3. Balance different muscle groups throughout the week\n")
	b.WriteString("4. Include warm-up and cool-down exercises for each session\n")
	b.WriteString("5. Provide equipment alternatives when possible\n")
	b.WriteString("6. Match workout types to user's preferred exercise types\n")
	b.WriteString("7. Ensure total workout duration matches specified session time\n")
	b.WriteString("8. Include proper rest periods between sets\n")
	b.WriteString("9. Add tempo instructions for strength exercises\n")
	b.WriteString("10. Include breathing patterns for all exercises\n")
	b.WriteString("11. Consider health limitations and exercises to avoid\n")
	b.WriteString("12. Focus on target areas if specified\n\n")

	fmt.Fprintf(&b, "Workout Type Distribution for %d days:\n", p.TrainingDays)
	fmt.Fprintf(&b, "- Focus on %s with %s preferences\n", p.Goal, valueOr(strings.Join(p.Preferences, ", "), "no specific"))
	b.WriteString("- Ensure balanced approach with strength, cardio, and recovery\n")
	b.WriteString("- Progressive overload principles for continuous improvement")

	return b.String()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func measurement(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}
