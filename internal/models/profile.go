package models

import "fmt"

// Закрытые словари для анкеты. Порядок элементов фиксирован —
// он используется и в клавиатурах бота, и в промпте.
var (
	FitnessLevels = []string{"Beginner", "Intermediate", "Advanced"}

	Goals = []string{
		"Muscle Gain", "Weight Loss", "General Fitness",
		"Strength Building", "Endurance", "Flexibility",
	}

	TrainingDaysOptions = []int{3, 4, 5, 6, 7}

	DurationOptions = []int{30, 45, 60, 75, 90}

	TargetAreas = []string{
		"Chest", "Back", "Shoulders", "Arms", "Core", "Legs", "Glutes", "Full Body",
	}

	EquipmentOptions = []string{
		"Dumbbells", "Barbells", "Kettlebells", "Resistance Bands",
		"Pull-up Bar", "Gym Machine", "Bodyweight Only", "Yoga Mat", "Stability Ball",
	}

	Preferences = []string{
		"Strength", "Cardio", "Flexibility", "HIIT/Circuit", "Mixed",
		"Calisthenics", "Pilates", "Yoga",
	}

	Genders = []string{"Male", "Female", "Other"}
)

// FitnessLevelDescriptions — пояснения к уровням подготовки для анкеты
var FitnessLevelDescriptions = map[string]string{
	"Beginner":     "New to structured exercise, learning proper form",
	"Intermediate": "Regular exercise routine, familiar with basic movements",
	"Advanced":     "Experienced with complex exercises and training principles",
}

// Profile — анкета клиента. Неизменяема после отправки:
// при редактировании создаётся новый профиль целиком.
type Profile struct {
	Name            string
	Age             int
	Gender          string
	Weight          float64 // кг, 0 = не указан
	Height          float64 // см, 0 = не указан
	FitnessLevel    string
	Goal            string
	TrainingDays    int // тренировок в неделю
	SessionDuration int // минут на тренировку

	TargetAreas []string
	Equipment   []string
	Preferences []string

	HealthLimitations string
	ExercisesToAvoid  string
	AdditionalNotes   string
}

// Validate проверяет профиль перед генерацией.
// Внешний слой (бот, CLI) ограничивает ввод словарями,
// здесь — последняя линия обороны.
func (p *Profile) Validate() error {
	if p.Age < 13 || p.Age > 80 {
		return fmt.Errorf("age must be 13-80, got %d", p.Age)
	}
	if p.Weight != 0 && (p.Weight < 20 || p.Weight > 200) {
		return fmt.Errorf("weight must be 20-200 kg, got %.1f", p.Weight)
	}
	if p.Height != 0 && (p.Height < 100 || p.Height > 250) {
		return fmt.Errorf("height must be 100-250 cm, got %.1f", p.Height)
	}
	if !containsString(Genders, p.Gender) {
		return fmt.Errorf("unknown gender %q", p.Gender)
	}
	if !containsString(FitnessLevels, p.FitnessLevel) {
		return fmt.Errorf("unknown fitness level %q", p.FitnessLevel)
	}
	if !containsString(Goals, p.Goal) {
		return fmt.Errorf("unknown goal %q", p.Goal)
	}
	if !containsInt(TrainingDaysOptions, p.TrainingDays) {
		return fmt.Errorf("training days must be one of %v, got %d", TrainingDaysOptions, p.TrainingDays)
	}
	if !containsInt(DurationOptions, p.SessionDuration) {
		return fmt.Errorf("session duration must be one of %v, got %d", DurationOptions, p.SessionDuration)
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
