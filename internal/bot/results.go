package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"planbot/clients/ai"
	"planbot/internal/export"
	"planbot/internal/models"
	"planbot/internal/session"
	"planbot/internal/usage"
	"planbot/internal/workout"
)

const generationTimeout = 3 * time.Minute

// Формат экспорта плана
type exportFormat int

const (
	exportText exportFormat = iota
	exportJSON
)

// generatePlan запрашивает модель и показывает результат
func (b *Bot) generatePlan(chatID int64) {
	s := b.getSession(chatID)

	b.send(chatID, "⏳ Generating your workout plan, this can take a minute...")

	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	started := time.Now()
	raw, tokens, err := b.generator.Generate(ctx, s.Profile, s.Ledger)
	if err != nil {
		// Прошлый план остаётся в сессии до успешной перегенерации
		log.Printf("Ошибка генерации плана для %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Plan generation failed: "+err.Error())
		msg.ReplyMarkup = b.mainMenuKeyboard()
		b.api.Send(msg)
		return
	}

	if err := installPlan(s, raw, tokens, time.Since(started)); err != nil {
		log.Printf("Ошибка разбора плана для %d: %v", chatID, err)
		b.sendParseFailure(chatID, err)
		return
	}

	b.sendPlanSummary(chatID, s.Profile, s.Days)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"✅ Plan ready in %.1fs. You can export it as a file below.", s.GenerationTime.Seconds()))
	msg.ReplyMarkup = b.planMenuKeyboard()
	b.api.Send(msg)
}

// installPlan разбирает ответ модели и записывает результат в сессию.
// При ошибке разбора прежний план сохраняется, а сырой ответ всё равно
// запоминается для диагностики.
func installPlan(s *session.Session, raw string, tokens ai.TokenUsage, elapsed time.Duration) error {
	s.RawPlan = raw
	s.LatestUsage = tokens
	s.GenerationTime = elapsed

	days, err := workout.ParsePlan(raw, s.Profile.Weight)
	if err != nil {
		return err
	}
	s.Days = days
	return nil
}

// sendParseFailure сообщает о неудачном разборе и показывает сырой ответ
func (b *Bot) sendParseFailure(chatID int64, err error) {
	var reason string
	switch {
	case errors.Is(err, workout.ErrInvalidJSON):
		reason = "the model returned invalid JSON"
	case errors.Is(err, workout.ErrPlanStructure):
		reason = "the model response has an unexpected structure"
	default:
		reason = "the response could not be processed"
	}

	msg := tgbotapi.NewMessage(chatID, "❌ Could not parse the plan: "+reason+".\n"+
		"Press \""+btnShowRaw+"\" to inspect the raw response, or \""+btnNewPlan+"\" to retry.")
	msg.ReplyMarkup = b.planMenuKeyboard()
	b.api.Send(msg)
}

// sendPlanSummary отправляет план по дням и недельную сводку
func (b *Bot) sendPlanSummary(chatID int64, profile models.Profile, days []models.Day) {
	for _, day := range days {
		b.send(chatID, renderDay(day, profile.Weight))
	}
	b.send(chatID, renderWeeklySummary(profile, days))
}

// renderDay форматирует один день плана для сообщения
func renderDay(day models.Day, weightKg float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🏋️ %s\n", day.Title)
	fmt.Fprintf(&sb, "Type: %s | Duration: %d min\n\n", day.Type, day.Duration)

	for i, ex := range day.Exercises {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ex.Name)

		var details []string
		details = append(details, fmt.Sprintf("%d sets", ex.Sets))
		if ex.Reps != "" {
			details = append(details, ex.Reps+" reps")
		}
		if ex.RestTime != "" {
			details = append(details, "rest "+ex.RestTime)
		}
		if ex.Weight != "" {
			details = append(details, ex.Weight)
		}
		fmt.Fprintf(&sb, "   %s\n", strings.Join(details, " | "))

		if weightKg > 0 {
			fmt.Fprintf(&sb, "   ~%.1f min, ~%.1f kcal\n", ex.EstimatedDuration, ex.CaloriesBurned)
		} else {
			fmt.Fprintf(&sb, "   ~%.1f min\n", ex.EstimatedDuration)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderWeeklySummary форматирует недельную сводку плана
func renderWeeklySummary(profile models.Profile, days []models.Day) string {
	var sb strings.Builder

	sb.WriteString("📊 WEEKLY SUMMARY\n\n")
	fmt.Fprintf(&sb, "Workout days: %d\n", len(days))
	fmt.Fprintf(&sb, "Total exercises: %d\n", models.TotalExercises(days))
	fmt.Fprintf(&sb, "Total duration: %d min\n", models.TotalDuration(days))
	if profile.Weight > 0 {
		fmt.Fprintf(&sb, "Estimated calories: %.1f kcal\n", models.TotalCalories(days))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// showUsage показывает расход токенов и стоимость за сессию
func (b *Bot) showUsage(chatID int64) {
	s := b.getSession(chatID)
	totals := s.Ledger.Totals()

	if totals.Requests == 0 {
		b.send(chatID, "No API usage recorded in this session yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 SESSION USAGE\n\n")
	fmt.Fprintf(&sb, "Requests: %d\n", totals.Requests)
	fmt.Fprintf(&sb, "Input tokens: %d\n", totals.InputTokens)
	fmt.Fprintf(&sb, "Output tokens: %d\n", totals.OutputTokens)
	fmt.Fprintf(&sb, "Total tokens: %d\n", totals.TotalTokens)
	fmt.Fprintf(&sb, "Estimated cost: $%.4f\n", totals.Cost)

	if s.LatestUsage.InputTokens > 0 {
		_, _, latestCost := usage.CalculateCosts(s.LatestUsage.InputTokens, s.LatestUsage.OutputTokens)
		fmt.Fprintf(&sb, "\nLast request: %d in / %d out ($%.4f)",
			s.LatestUsage.InputTokens, s.LatestUsage.OutputTokens, latestCost)
	}

	b.send(chatID, sb.String())
}

// exportPlan отправляет план файлом в выбранном формате
func (b *Bot) exportPlan(chatID int64, format exportFormat) {
	s := b.getSession(chatID)
	if !s.HasPlan() {
		b.send(chatID, "No plan to export yet. Press \"" + btnNewPlan + "\" first.")
		return
	}

	now := time.Now()
	var content, filename string

	switch format {
	case exportJSON:
		out, err := export.ToJSON(s.Profile, s.Days, now)
		if err != nil {
			log.Printf("Ошибка экспорта JSON для %d: %v", chatID, err)
			b.send(chatID, "❌ Export failed.")
			return
		}
		content = out
		filename = exportFilename("json", now)
	default:
		content = export.ToText(s.Profile, s.Days, now)
		filename = exportFilename("txt", now)
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: []byte(content),
	})
	doc.Caption = fmt.Sprintf("💪 %d-Day %s Workout Plan", s.Profile.TrainingDays, s.Profile.Goal)

	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Ошибка отправки файла для %d: %v", chatID, err)
		b.send(chatID, "❌ Could not send the file.")
		return
	}
}

// showRawResponse показывает сырой ответ модели для диагностики
func (b *Bot) showRawResponse(chatID int64) {
	s := b.getSession(chatID)
	if s.RawPlan == "" {
		b.send(chatID, "No model response stored in this session.")
		return
	}

	// Telegram ограничивает сообщение 4096 символами
	b.send(chatID, "🔍 Raw model response:\n\n"+truncateRaw(s.RawPlan, 3900))
}

// truncateRaw обрезает текст до limit байт, не разрывая UTF-8 руну
func truncateRaw(raw string, limit int) string {
	if len(raw) <= limit {
		return raw
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "\n... (truncated)"
}

// exportFilename строит имя файла выгрузки с отметкой времени
func exportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("workout_plan_%s.%s", now.Format("20060102_150405"), ext)
}
