// Package workout разбирает ответ модели в канонический план
// и считает производные метрики (длительность, калории).
package workout

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// metEntry — запись таблицы MET-значений.
// Таблица хранится срезом, а не map: совпадения ищутся по подстроке,
// и при нескольких кандидатах побеждает первый по порядку таблицы.
// Порядок менять нельзя — это контракт совместимости.
type metEntry struct {
	name string
	met  float64
}

// defaultMET — значение для неизвестных упражнений
const defaultMET = 5.0

// Формула: ккал = MET x 3.5 x вес(кг) / 200 x минуты
var metTable = []metEntry{
	// Силовые
	{"weight lifting", 6.0},
	{"circuit training", 8.0},
	{"bodyweight exercises", 3.8},
	{"push ups", 3.8},
	{"pull ups", 8.0},
	{"sit ups", 3.8},
	{"squats", 5.5},
	{"deadlifts", 6.0},
	{"bench press", 6.0},
	{"lunges", 3.8},
	{"planks", 4.0},

	// Кардио
	{"running", 9.8},
	{"jogging", 7.0},
	{"walking", 3.5},
	{"cycling", 8.0},
	{"swimming", 9.8},
	{"rowing", 7.0},
	{"jumping jacks", 8.0},
	{"burpees", 8.0},
	{"jump rope", 12.3},
	{"hiit", 8.0},

	// Растяжка и восстановление
	{"yoga", 3.0},
	{"stretching", 2.3},
	{"pilates", 3.0},
	{"cooldown", 2.0},
	{"warm up", 3.0},
}

var digitsRe = regexp.MustCompile(`\d+`)

// RepCount — результат разбора строки повторов:
// среднее значение для расчётов, исходная строка для отображения.
type RepCount struct {
	Raw string
	Avg float64
}

// RestPeriod — результат разбора строки отдыха между подходами
type RestPeriod struct {
	Raw     string
	Minutes float64
}

// ParseReps разбирает строку повторов: "12", "10-12", "8-10 per leg".
// Для диапазона берётся среднее всех чисел. Без чисел — 10 по умолчанию.
func ParseReps(reps string) RepCount {
	avg := 10.0
	if strings.Contains(reps, "-") {
		parts := digitsRe.FindAllString(reps, -1)
		if len(parts) > 0 {
			sum := 0.0
			for _, p := range parts {
				n, err := strconv.Atoi(p)
				if err != nil {
					return RepCount{Raw: reps, Avg: 10}
				}
				sum += float64(n)
			}
			avg = sum / float64(len(parts))
		}
	} else if m := digitsRe.FindString(reps); m != "" {
		n, err := strconv.ParseFloat(m, 64)
		if err == nil {
			avg = n
		}
	}
	return RepCount{Raw: reps, Avg: avg}
}

// ParseRest разбирает строку отдыха: "60s", "90 sec", "2min".
// "min" имеет приоритет над "s". Без чисел и единиц — 1 минута.
func ParseRest(rest string) RestPeriod {
	minutes := 1.0
	lower := strings.ToLower(rest)
	switch {
	case strings.Contains(lower, "min"):
		if m := digitsRe.FindString(lower); m != "" {
			if n, err := strconv.ParseFloat(m, 64); err == nil {
				minutes = n
			}
		}
	case strings.Contains(lower, "s"):
		seconds := 60.0
		if m := digitsRe.FindString(lower); m != "" {
			if n, err := strconv.ParseFloat(m, 64); err == nil {
				seconds = n
			}
		}
		minutes = seconds / 60
	}
	return RestPeriod{Raw: rest, Minutes: minutes}
}

// EstimateDuration оценивает длительность упражнения в минутах:
// (повторы x 3 сек + отдых) x подходы, округление до сотых.
// Некорректные строки не приводят к ошибке — подставляются значения
// по умолчанию (10 повторов, 1 минута отдыха).
func EstimateDuration(totalSets int, reps, restTime string) float64 {
	repCount := ParseReps(reps)
	rest := ParseRest(restTime)

	timePerSet := repCount.Avg * 3 / 60 // секунды -> минуты
	total := (timePerSet + rest.Minutes) * float64(totalSets)

	return math.Round(total*100) / 100
}

// CaloriesBurned оценивает ккал по MET-значению.
// Подбор MET: первая запись таблицы, имя которой входит в название
// упражнения или содержит его целиком (первое совпадение по порядку
// таблицы, не «лучшее»). Если совпадения нет, MET уточняется по типу
// упражнения. Без веса клиента всегда 0.
func CaloriesBurned(exerciseName string, weightKg, durationMinutes float64, exerciseType string) float64 {
	if weightKg <= 0 {
		return 0.0
	}

	nameLower := strings.ToLower(exerciseName)

	met := defaultMET
	for _, entry := range metTable {
		if strings.Contains(nameLower, entry.name) || strings.Contains(entry.name, nameLower) {
			met = entry.met
			break
		}
	}

	// Таблица не помогла — уточняем по типу упражнения
	if met == defaultMET {
		typeLower := strings.ToLower(exerciseType)
		switch {
		case strings.Contains(typeLower, "cardio"), strings.Contains(typeLower, "hiit"):
			met = 8.0
		case strings.Contains(typeLower, "strength"), strings.Contains(typeLower, "compound"):
			met = 6.0
		case strings.Contains(typeLower, "warm"):
			met = 3.0
		case strings.Contains(typeLower, "cool"), strings.Contains(typeLower, "flexibility"):
			met = 2.5
		}
	}

	calories := met * 3.5 * weightKg / 200 * durationMinutes
	return math.Round(calories*10) / 10
}
