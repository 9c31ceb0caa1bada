package models

// Day — тренировочный день канонического плана.
// Дни упорядочены по лексикографическому порядку ключей ответа модели
// (day_10 идёт раньше day_2 — совместимость с исходным форматом).
type Day struct {
	Number    int    // номер дня, извлечённый из ключа (day_3 -> 3)
	Title     string // например "Day 1 - Monday"
	Type      string // Strength, Cardio, HIIT...
	Duration  int    // минут
	Exercises []PlanExercise
}

// PlanExercise — упражнение канонического плана.
// Свободные поля (Reps, RestTime, Weight) хранятся как в ответе модели,
// числовые значения из них извлекаются один раз при расчётах.
type PlanExercise struct {
	Name         string
	Type         string // Compound/Isolation/Warm-up/Cooldown/Cardio...
	Equipment    string
	TargetMuscle string

	Sets      int    // минимум 1
	Reps      string // "12" или диапазон "10-12"
	Tempo     string // "3-1-2"
	RestTime  string // "60s", "2min"
	Weight    string // рекомендация по весу
	Speed     string // Slow/Moderate/Fast для кардио
	Breathing string
	Superset  string // "None", если упражнение не в суперсете

	// Производные поля, заполняются парсером
	EstimatedDuration float64 // минут
	CaloriesBurned    float64 // ккал, 0 если вес клиента не известен
}

// TotalExercises возвращает общее число упражнений плана
func TotalExercises(days []Day) int {
	total := 0
	for _, d := range days {
		total += len(d.Exercises)
	}
	return total
}

// TotalDuration возвращает суммарную недельную длительность в минутах
func TotalDuration(days []Day) int {
	total := 0
	for _, d := range days {
		total += d.Duration
	}
	return total
}

// TotalCalories возвращает суммарные ккал за неделю
func TotalCalories(days []Day) float64 {
	total := 0.0
	for _, d := range days {
		for _, ex := range d.Exercises {
			total += ex.CaloriesBurned
		}
	}
	return total
}
