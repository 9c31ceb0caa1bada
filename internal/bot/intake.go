package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"planbot/internal/models"
)

// Состояния анкеты
const (
	stateIntakeName        = "intake_name"
	stateIntakeAge         = "intake_age"
	stateIntakeGender      = "intake_gender"
	stateIntakeWeight      = "intake_weight"
	stateIntakeHeight      = "intake_height"
	stateIntakeLevel       = "intake_level"
	stateIntakeGoal        = "intake_goal"
	stateIntakeDays        = "intake_days"
	stateIntakeDuration    = "intake_duration"
	stateIntakeTargets     = "intake_targets"
	stateIntakeEquipment   = "intake_equipment"
	stateIntakePreferences = "intake_preferences"
	stateIntakeLimitations = "intake_limitations"
	stateIntakeAvoid       = "intake_avoid"
	stateIntakeNotes       = "intake_notes"
)

// startIntake начинает заполнение анкеты. Если анкета уже заполнена и
// редактирование не запрошено, сразу переходит к генерации нового плана.
// При редактировании прежние ответы сохраняются: на каждом шаге кнопка
// Skip оставляет текущее значение.
func (b *Bot) startIntake(chatID int64, edit bool) {
	s := b.getSession(chatID)

	if !edit {
		if s.Profile.Validate() == nil {
			b.generatePlan(chatID)
			return
		}
		s.Profile = models.Profile{}
		s.ResetPlan()
	}
	b.setState(chatID, stateIntakeName)

	b.ask(chatID, withCurrent("📝 Let's build your fitness profile.\n\nWhat's your name?", s.Profile.Name),
		freeTextKeyboard(s.Profile.Name != ""))
}

// processIntake обрабатывает очередной шаг анкеты
func (b *Bot) processIntake(message *tgbotapi.Message, state string) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	if text == btnCancel {
		b.cancelIntake(chatID)
		return
	}

	s := b.getSession(chatID)
	p := &s.Profile

	switch state {
	case stateIntakeName:
		if !keepCurrent(text, p.Name != "") {
			if len(text) < 2 || len(text) > 50 {
				b.send(chatID, "❌ Please enter a name between 2 and 50 characters.")
				return
			}
			p.Name = text
		}
		b.setState(chatID, stateIntakeAge)
		b.ask(chatID, withCurrent("How old are you?", currentInt(p.Age)), freeTextKeyboard(p.Age != 0))

	case stateIntakeAge:
		if !keepCurrent(text, p.Age != 0) {
			age, err := parseAge(text)
			if err != nil {
				b.send(chatID, "❌ "+err.Error())
				return
			}
			p.Age = age
		}
		b.setState(chatID, stateIntakeGender)
		b.ask(chatID, withCurrent("What's your gender?", p.Gender),
			optionsKeyboard(models.Genders, skipIf(p.Gender != "")...))

	case stateIntakeGender:
		if !keepCurrent(text, p.Gender != "") {
			if !oneOf(models.Genders, text) {
				b.send(chatID, "❌ Please choose one of the options on the keyboard.")
				return
			}
			p.Gender = text
		}
		b.setState(chatID, stateIntakeWeight)
		b.ask(chatID, withCurrent("Your weight in kg? It is used for calorie estimates.\nPress Skip if you prefer not to say.",
			currentFloat(p.Weight)), skipKeyboard())

	case stateIntakeWeight:
		if text != btnSkip {
			weight, err := parseMeasure(text, 20, 200, "weight")
			if err != nil {
				b.send(chatID, "❌ "+err.Error())
				return
			}
			p.Weight = weight
		}
		b.setState(chatID, stateIntakeHeight)
		b.ask(chatID, withCurrent("Your height in cm?", currentFloat(p.Height)), skipKeyboard())

	case stateIntakeHeight:
		if text != btnSkip {
			height, err := parseMeasure(text, 100, 250, "height")
			if err != nil {
				b.send(chatID, "❌ "+err.Error())
				return
			}
			p.Height = height
		}
		b.setState(chatID, stateIntakeLevel)
		b.ask(chatID, withCurrent(levelPrompt(), p.FitnessLevel),
			optionsKeyboard(models.FitnessLevels, skipIf(p.FitnessLevel != "")...))

	case stateIntakeLevel:
		if !keepCurrent(text, p.FitnessLevel != "") {
			if !oneOf(models.FitnessLevels, text) {
				b.send(chatID, "❌ Please choose one of the options on the keyboard.")
				return
			}
			p.FitnessLevel = text
		}
		b.setState(chatID, stateIntakeGoal)
		b.ask(chatID, withCurrent("What's your primary fitness goal?", p.Goal),
			optionsKeyboard(models.Goals, skipIf(p.Goal != "")...))

	case stateIntakeGoal:
		if !keepCurrent(text, p.Goal != "") {
			if !oneOf(models.Goals, text) {
				b.send(chatID, "❌ Please choose one of the options on the keyboard.")
				return
			}
			p.Goal = text
		}
		b.setState(chatID, stateIntakeDays)
		b.ask(chatID, withCurrent("How many training days per week?", currentInt(p.TrainingDays)),
			optionsKeyboard(intOptions(models.TrainingDaysOptions), skipIf(p.TrainingDays != 0)...))

	case stateIntakeDays:
		if !keepCurrent(text, p.TrainingDays != 0) {
			days, err := strconv.Atoi(text)
			if err != nil || !oneOfInt(models.TrainingDaysOptions, days) {
				b.send(chatID, "❌ Please choose one of the options on the keyboard.")
				return
			}
			p.TrainingDays = days
		}
		b.setState(chatID, stateIntakeDuration)
		b.ask(chatID, withCurrent("How long should each session be, in minutes?", currentInt(p.SessionDuration)),
			optionsKeyboard(intOptions(models.DurationOptions), skipIf(p.SessionDuration != 0)...))

	case stateIntakeDuration:
		if !keepCurrent(text, p.SessionDuration != 0) {
			minutes, err := strconv.Atoi(text)
			if err != nil || !oneOfInt(models.DurationOptions, minutes) {
				b.send(chatID, "❌ Please choose one of the options on the keyboard.")
				return
			}
			p.SessionDuration = minutes
		}
		b.setState(chatID, stateIntakeTargets)
		b.ask(chatID, "Which areas do you want to focus on? Select all that apply, then press Done.",
			multiSelectKeyboard(models.TargetAreas, p.TargetAreas))

	case stateIntakeTargets:
		if text == btnDone {
			b.setState(chatID, stateIntakeEquipment)
			b.ask(chatID, "What equipment do you have available? Select all that apply, then press Done.",
				multiSelectKeyboard(models.EquipmentOptions, p.Equipment))
			return
		}
		p.TargetAreas = toggleSelection(models.TargetAreas, p.TargetAreas, text)
		b.ask(chatID, "Anything else? Press Done when finished.", multiSelectKeyboard(models.TargetAreas, p.TargetAreas))

	case stateIntakeEquipment:
		if text == btnDone {
			b.setState(chatID, stateIntakePreferences)
			b.ask(chatID, "What workout styles do you prefer? Select all that apply, then press Done.",
				multiSelectKeyboard(models.Preferences, p.Preferences))
			return
		}
		p.Equipment = toggleSelection(models.EquipmentOptions, p.Equipment, text)
		b.ask(chatID, "Anything else? Press Done when finished.", multiSelectKeyboard(models.EquipmentOptions, p.Equipment))

	case stateIntakePreferences:
		if text == btnDone {
			b.setState(chatID, stateIntakeLimitations)
			b.ask(chatID, withCurrent("Any health limitations or injuries I should know about?", p.HealthLimitations), skipKeyboard())
			return
		}
		p.Preferences = toggleSelection(models.Preferences, p.Preferences, text)
		b.ask(chatID, "Anything else? Press Done when finished.", multiSelectKeyboard(models.Preferences, p.Preferences))

	case stateIntakeLimitations:
		if text != btnSkip {
			p.HealthLimitations = text
		}
		b.setState(chatID, stateIntakeAvoid)
		b.ask(chatID, withCurrent("Any exercises you want to avoid?", p.ExercisesToAvoid), skipKeyboard())

	case stateIntakeAvoid:
		if text != btnSkip {
			p.ExercisesToAvoid = text
		}
		b.setState(chatID, stateIntakeNotes)
		b.ask(chatID, withCurrent("Anything else you'd like to add?", p.AdditionalNotes), skipKeyboard())

	case stateIntakeNotes:
		if text != btnSkip {
			p.AdditionalNotes = text
		}
		b.clearState(chatID)

		if err := p.Validate(); err != nil {
			b.send(chatID, "❌ Profile is incomplete: "+err.Error())
			b.sendWelcome(chatID)
			return
		}
		b.generatePlan(chatID)

	default:
		b.cancelIntake(chatID)
	}
}

// cancelIntake отменяет заполнение анкеты
func (b *Bot) cancelIntake(chatID int64) {
	b.clearState(chatID)
	msg := tgbotapi.NewMessage(chatID, "Cancelled.")
	msg.ReplyMarkup = b.mainMenuKeyboard()
	b.api.Send(msg)
}

// ask отправляет вопрос с клавиатурой вариантов
func (b *Bot) ask(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	b.api.Send(msg)
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

// freeTextKeyboard - клавиатура для вопросов со свободным вводом.
// Кнопка Skip добавляется, когда в анкете уже есть прежний ответ.
func freeTextKeyboard(hasValue bool) tgbotapi.ReplyKeyboardMarkup {
	if hasValue {
		return skipKeyboard()
	}
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)),
	)
}

func skipIf(hasValue bool) []string {
	if hasValue {
		return []string{btnSkip}
	}
	return nil
}

// keepCurrent сообщает, оставляет ли ответ прежнее значение анкеты
func keepCurrent(text string, hasValue bool) bool {
	return text == btnSkip && hasValue
}

// withCurrent дописывает к вопросу прежний ответ анкеты, если он есть
func withCurrent(question, current string) string {
	if current == "" {
		return question
	}
	return question + "\nCurrent: " + current + ". Press Skip to keep it."
}

func currentInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func currentFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// levelPrompt строит вопрос об уровне подготовки с пояснениями
func levelPrompt() string {
	var b strings.Builder
	b.WriteString("What's your current fitness level?\n")
	for _, level := range models.FitnessLevels {
		fmt.Fprintf(&b, "\n%s - %s", level, models.FitnessLevelDescriptions[level])
	}
	return b.String()
}

// parseAge проверяет возраст
func parseAge(text string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("please enter your age as a number")
	}
	if age < 13 || age > 80 {
		return 0, fmt.Errorf("age must be between 13 and 80")
	}
	return age, nil
}

// parseMeasure проверяет вес или рост в допустимом диапазоне
func parseMeasure(text string, min, max float64, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(text), ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("please enter your %s as a number", name)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %.0f and %.0f", name, min, max)
	}
	return v, nil
}

// toggleSelection добавляет вариант в выбор или убирает его оттуда.
// Галочка на кнопке отбрасывается, неизвестные варианты игнорируются.
func toggleSelection(options, selected []string, choice string) []string {
	choice = strings.TrimPrefix(choice, "✅ ")
	if !oneOf(options, choice) {
		return selected
	}

	for i, s := range selected {
		if s == choice {
			return append(selected[:i], selected[i+1:]...)
		}
	}
	return append(selected, choice)
}

func oneOf(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func oneOfInt(options []int, v int) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func intOptions(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}
