// Package bot реализует Telegram-интерфейс генератора планов тренировок:
// анкета пользователя, генерация плана через модель, выгрузка файлов
// и напоминания о тренировках.
package bot

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"planbot/clients/ai"
	"planbot/internal/config"
	"planbot/internal/session"
)

// Кнопки главного меню
const (
	btnNewPlan     = "📝 New Plan"
	btnEditProfile = "👤 Edit Profile"
	btnUsage       = "📊 Usage"
	btnReminders   = "⏰ Reminders"
	btnExportTxt   = "📄 Export TXT"
	btnExportJSON  = "🧾 Export JSON"
	btnShowRaw     = "🔍 Raw Response"
	btnSkip        = "Skip"
	btnDone        = "✅ Done"
	btnCancel      = "Cancel"
)

// Bot представляет Telegram бота
type Bot struct {
	api       *tgbotapi.BotAPI
	config    *config.Config
	generator *ai.PlanGenerator

	// Сессии пользователей и их состояния в диалоге
	sessions struct {
		sync.RWMutex
		data map[int64]*session.Session
	}
	userStates struct {
		sync.RWMutex
		states map[int64]string
	}

	reminders *reminderService
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, cfg *config.Config) *Bot {
	client := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	b := &Bot{
		api:       api,
		config:    cfg,
		generator: ai.NewPlanGenerator(client),
	}
	b.sessions.data = make(map[int64]*session.Session)
	b.userStates.states = make(map[int64]string)
	b.reminders = newReminderService(b, cfg.ReminderTime)

	return b
}

// Start запускает бота и цикл обработки сообщений
func (b *Bot) Start() error {
	if err := b.reminders.start(); err != nil {
		log.Printf("Предупреждение: напоминания не запущены: %v", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	log.Printf("Бот @%s запущен", b.api.Self.UserName)
	b.handleUpdates(updates)
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.sendWelcome(chatID)
	case "new":
		b.startIntake(chatID, false)
	case "help":
		b.sendHelp(chatID)
	default:
		b.send(chatID, "Unknown command. Try /start or /help.")
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	state := b.getState(chatID)
	if state != "" {
		b.processIntake(message, state)
		return
	}

	switch message.Text {
	case btnNewPlan:
		b.startIntake(chatID, false)
	case btnEditProfile:
		b.startIntake(chatID, true)
	case btnUsage:
		b.showUsage(chatID)
	case btnReminders:
		b.toggleReminder(chatID)
	case btnExportTxt:
		b.exportPlan(chatID, exportText)
	case btnExportJSON:
		b.exportPlan(chatID, exportJSON)
	case btnShowRaw:
		b.showRawResponse(chatID)
	default:
		b.sendWelcome(chatID)
	}
}

func (b *Bot) sendWelcome(chatID int64) {
	text := "💪 AI Workout Plan Generator\n\n" +
		"I build personalized workout plans based on your fitness profile.\n" +
		"Press \"" + btnNewPlan + "\" to get started."
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.mainMenuKeyboard()
	b.api.Send(msg)
}

func (b *Bot) sendHelp(chatID int64) {
	text := "Commands:\n" +
		"/start - main menu\n" +
		"/new - fill in the profile and generate a plan\n\n" +
		"After generation you can export the plan as a text or JSON file."
	b.send(chatID, text)
}

// getSession возвращает сессию пользователя, создавая её при первом обращении
func (b *Bot) getSession(chatID int64) *session.Session {
	b.sessions.Lock()
	defer b.sessions.Unlock()

	s, ok := b.sessions.data[chatID]
	if !ok {
		s = session.New()
		b.sessions.data[chatID] = s
	}
	return s
}

func (b *Bot) getState(chatID int64) string {
	b.userStates.RLock()
	defer b.userStates.RUnlock()
	return b.userStates.states[chatID]
}

func (b *Bot) setState(chatID int64, state string) {
	b.userStates.Lock()
	b.userStates.states[chatID] = state
	b.userStates.Unlock()
}

func (b *Bot) clearState(chatID int64) {
	b.userStates.Lock()
	delete(b.userStates.states, chatID)
	b.userStates.Unlock()
}

// send отправляет простое текстовое сообщение
func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}
}
