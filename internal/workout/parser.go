package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"planbot/internal/models"
)

// Ошибки разбора плана. Сырой текст ответа остаётся у вызывающего —
// при ошибке он показывается пользователю для диагностики.
var (
	// ErrInvalidJSON — ответ модели не является корректным JSON
	ErrInvalidJSON = errors.New("workout: response is not valid JSON")
	// ErrPlanStructure — JSON корректен, но структура плана не читается
	ErrPlanStructure = errors.New("workout: unexpected plan structure")
)

// ParsePlan разбирает сырой ответ модели в канонический список дней.
// weightKg — вес клиента для расчёта калорий (0 = не считать).
//
// Правила устойчивости:
//   - отсутствующие поля получают значения по умолчанию;
//   - упражнение без названия отбрасывается;
//   - день без упражнений (после фильтрации) отбрасывается;
//   - синтаксическая ошибка JSON -> пустой план + ErrInvalidJSON;
//   - структурная ошибка -> пустой план + ErrPlanStructure.
//
// Дни сортируются по лексикографическому порядку ключей, не по числу:
// day_10 идёт раньше day_2. Так делал исходный формат, менять нельзя.
func ParsePlan(raw string, weightKg float64) ([]models.Day, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return []models.Day{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	dayMap := doc
	if inner, ok := doc["workout_plan"]; ok {
		m, ok := inner.(map[string]any)
		if !ok {
			return []models.Day{}, fmt.Errorf("%w: workout_plan is not an object", ErrPlanStructure)
		}
		dayMap = m
	}

	keys := make([]string, 0, len(dayMap))
	for k := range dayMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var days []models.Day
	for _, key := range keys {
		dayInfo, ok := dayMap[key].(map[string]any)
		if !ok {
			return []models.Day{}, fmt.Errorf("%w: day %q is not an object", ErrPlanStructure, key)
		}

		day := models.Day{
			Number:   dayNumber(key, len(days)),
			Type:     getString(dayInfo, "workout_type", "Workout"),
			Duration: getInt(dayInfo, "workout_duration", 0),
		}
		day.Title = getString(dayInfo, "day_name", fmt.Sprintf("Day %d", day.Number))

		rawExercises, ok := dayInfo["exercises"].([]any)
		if !ok && dayInfo["exercises"] != nil {
			return []models.Day{}, fmt.Errorf("%w: exercises of %q is not a list", ErrPlanStructure, key)
		}

		for _, rawEx := range rawExercises {
			exInfo, ok := rawEx.(map[string]any)
			if !ok {
				return []models.Day{}, fmt.Errorf("%w: exercise of %q is not an object", ErrPlanStructure, key)
			}

			ex := buildExercise(exInfo, weightKg)
			if ex.Name == "" {
				continue // без названия упражнение бесполезно
			}
			day.Exercises = append(day.Exercises, ex)
		}

		if len(day.Exercises) == 0 {
			continue
		}
		days = append(days, day)
	}

	if days == nil {
		days = []models.Day{}
	}
	return days, nil
}

// buildExercise собирает упражнение с подстановкой значений по умолчанию
// и расчётом производных метрик
func buildExercise(info map[string]any, weightKg float64) models.PlanExercise {
	ex := models.PlanExercise{
		Name:         getString(info, "exercise_name", ""),
		Type:         getString(info, "exercise_type", ""),
		Equipment:    getString(info, "equipment_required", ""),
		TargetMuscle: getString(info, "target_muscle_group", ""),
		Sets:         getInt(info, "total_sets", 1),
		Reps:         getString(info, "reps", ""),
		Tempo:        getString(info, "tempo", ""),
		RestTime:     getString(info, "rest_time", ""),
		Weight:       getString(info, "weight", ""),
		Speed:        getString(info, "speed_level", ""),
		Breathing:    getString(info, "breathing_pattern", ""),
		Superset:     getString(info, "superset_indicator", "None"),
	}
	if ex.Sets < 1 {
		ex.Sets = 1
	}

	// Для оценки длительности пустые повторы/отдых заменяются
	// типовыми значениями, в самом упражнении остаётся как было
	reps := ex.Reps
	if reps == "" {
		reps = "10"
	}
	rest := ex.RestTime
	if rest == "" {
		rest = "60s"
	}
	ex.EstimatedDuration = EstimateDuration(ex.Sets, reps, rest)

	if weightKg > 0 {
		ex.CaloriesBurned = CaloriesBurned(ex.Name, weightKg, ex.EstimatedDuration, ex.Type)
	}

	return ex
}

// dayNumber извлекает номер дня из ключа ("day_3" -> 3).
// Без цифр в ключе — порядковый номер после уже принятых дней.
func dayNumber(key string, accepted int) int {
	if m := digitsRe.FindString(key); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return accepted + 1
}

// getString возвращает строковое поле с значением по умолчанию.
// Числа приводятся к строке: модель иногда отвечает reps: 12 вместо "12".
func getString(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return def
	}
}

// getInt возвращает целочисленное поле с значением по умолчанию
func getInt(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return def
}
