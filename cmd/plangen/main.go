package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"planbot/clients/ai"
	"planbot/internal/config"
	"planbot/internal/export"
	"planbot/internal/models"
	"planbot/internal/usage"
	"planbot/internal/workout"
)

func main() {
	// Флаги
	name := flag.String("name", "", "Имя пользователя")
	age := flag.Int("age", 0, "Возраст")
	gender := flag.String("gender", "", "Пол: Male, Female, Other")
	weight := flag.Float64("weight", 0, "Вес (кг), 0 = не указан")
	height := flag.Float64("height", 0, "Рост (см), 0 = не указан")
	level := flag.String("level", "", "Уровень подготовки: Beginner, Intermediate, Advanced")
	goal := flag.String("goal", "", "Цель тренировок")
	days := flag.Int("days", 0, "Тренировок в неделю (3-7)")
	duration := flag.Int("duration", 0, "Длительность тренировки в минутах")
	format := flag.String("format", "text", "Формат вывода: text или json")
	output := flag.String("output", "", "Файл для сохранения плана")

	flag.Parse()

	cfg, err := config.LoadCLI()
	if err != nil {
		fmt.Printf("❌ Ошибка конфигурации: %v\n", err)
		os.Exit(1)
	}

	profile := models.Profile{
		Name:            *name,
		Age:             *age,
		Gender:          *gender,
		Weight:          *weight,
		Height:          *height,
		FitnessLevel:    *level,
		Goal:            *goal,
		TrainingDays:    *days,
		SessionDuration: *duration,
	}

	// Интерактивный режим если анкета не заполнена флагами
	if profile.Validate() != nil {
		profile = runInteractive()
	}

	client := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	generator := ai.NewPlanGenerator(client)
	ledger := usage.NewLedger()

	fmt.Println("\n⏳ Генерирую план тренировок...")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	started := time.Now()
	raw, tokens, err := generator.Generate(ctx, profile, ledger)
	if err != nil {
		fmt.Printf("❌ Ошибка генерации: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(started)

	planDays, err := workout.ParsePlan(raw, profile.Weight)
	if err != nil {
		fmt.Printf("❌ Ошибка разбора ответа: %v\n\nСырой ответ модели:\n%s\n", err, raw)
		os.Exit(1)
	}

	now := time.Now()
	var rendered string
	switch *format {
	case "json":
		rendered, err = export.ToJSON(profile, planDays, now)
		if err != nil {
			fmt.Printf("❌ Ошибка экспорта: %v\n", err)
			os.Exit(1)
		}
	default:
		rendered = export.ToText(profile, planDays, now)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0644); err != nil {
			fmt.Printf("❌ Ошибка записи файла: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ План сохранён в %s\n", *output)
	} else {
		fmt.Println(rendered)
	}

	// Статистика
	totals := ledger.Totals()
	fmt.Println("\n📊 Статистика генерации:")
	fmt.Printf("  Дней: %d\n", len(planDays))
	fmt.Printf("  Упражнений: %d\n", models.TotalExercises(planDays))
	fmt.Printf("  Время генерации: %.1fs\n", elapsed.Seconds())
	fmt.Printf("  Токены: %d вход / %d выход\n", tokens.InputTokens, tokens.OutputTokens)
	fmt.Printf("  Стоимость: $%.4f\n", totals.Cost)
}

func runInteractive() models.Profile {
	reader := bufio.NewReader(os.Stdin)
	var p models.Profile

	fmt.Println("💪 Генератор планов тренировок")
	fmt.Println("==============================")

	p.Name = askString(reader, "Имя", "User")
	p.Age = askIntRange(reader, "Возраст", 13, 80)
	p.Gender = askChoice(reader, "Пол", models.Genders)
	p.Weight = askOptionalFloat(reader, "Вес (кг, Enter для пропуска)")
	p.Height = askOptionalFloat(reader, "Рост (см, Enter для пропуска)")
	p.FitnessLevel = askChoice(reader, "Уровень подготовки", models.FitnessLevels)
	p.Goal = askChoice(reader, "Цель", models.Goals)
	p.TrainingDays = askIntChoice(reader, "Тренировок в неделю", models.TrainingDaysOptions)
	p.SessionDuration = askIntChoice(reader, "Минут на тренировку", models.DurationOptions)
	p.TargetAreas = askMulti(reader, "Целевые зоны", models.TargetAreas)
	p.Equipment = askMulti(reader, "Доступный инвентарь", models.EquipmentOptions)
	p.Preferences = askMulti(reader, "Предпочитаемые типы тренировок", models.Preferences)
	p.HealthLimitations = askString(reader, "Ограничения по здоровью (Enter - нет)", "")
	p.ExercisesToAvoid = askString(reader, "Упражнения, которых стоит избегать (Enter - нет)", "")
	p.AdditionalNotes = askString(reader, "Дополнительные пожелания (Enter - нет)", "")

	return p
}

func askString(reader *bufio.Reader, prompt, fallback string) string {
	fmt.Printf("%s: ", prompt)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	return input
}

func askIntRange(reader *bufio.Reader, prompt string, min, max int) int {
	for {
		fmt.Printf("%s [%d-%d]: ", prompt, min, max)
		input, _ := reader.ReadString('\n')
		v, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && v >= min && v <= max {
			return v
		}
		fmt.Println("❌ Неверное значение")
	}
}

func askOptionalFloat(reader *bufio.Reader, prompt string) float64 {
	fmt.Printf("%s: ", prompt)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(input, ",", ".", 1), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func askChoice(reader *bufio.Reader, prompt string, options []string) string {
	fmt.Printf("\n%s:\n", prompt)
	for i, opt := range options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}
	for {
		fmt.Print("Выбор [номер]: ")
		input, _ := reader.ReadString('\n')
		idx, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1]
		}
		fmt.Println("❌ Неверный выбор")
	}
}

func askIntChoice(reader *bufio.Reader, prompt string, options []int) int {
	fmt.Printf("\n%s %v: ", prompt, options)
	for {
		input, _ := reader.ReadString('\n')
		v, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil {
			for _, opt := range options {
				if opt == v {
					return v
				}
			}
		}
		fmt.Printf("❌ Выберите одно из %v: ", options)
	}
}

func askMulti(reader *bufio.Reader, prompt string, options []string) []string {
	fmt.Printf("\n%s (номера через запятую, Enter - пропустить):\n", prompt)
	for i, opt := range options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}
	fmt.Print("Выбор: ")
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	var selected []string
	for _, part := range strings.Split(input, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(options) {
			continue
		}
		selected = append(selected, options[idx-1])
	}
	return selected
}
