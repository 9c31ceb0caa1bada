package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/robfig/cron"
)

// reminderService шлёт ежедневные напоминания о тренировке
// подписавшимся пользователям.
type reminderService struct {
	bot  *Bot
	time string // ЧЧ:ММ

	mu         sync.Mutex
	subscribed map[int64]bool
	cron       *cron.Cron
}

func newReminderService(b *Bot, at string) *reminderService {
	return &reminderService{
		bot:        b,
		time:       at,
		subscribed: make(map[int64]bool),
	}
}

// start запускает планировщик ежедневных напоминаний
func (r *reminderService) start() error {
	spec, err := cronSpec(r.time)
	if err != nil {
		return fmt.Errorf("некорректное время напоминания %q: %w", r.time, err)
	}

	r.cron = cron.New()
	if err := r.cron.AddFunc(spec, r.broadcast); err != nil {
		return fmt.Errorf("ошибка планировщика: %w", err)
	}
	r.cron.Start()

	log.Printf("Напоминания о тренировках запланированы на %s", r.time)
	return nil
}

// toggle подписывает или отписывает пользователя, возвращает новое состояние
func (r *reminderService) toggle(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subscribed[chatID] {
		delete(r.subscribed, chatID)
		return false
	}
	r.subscribed[chatID] = true
	return true
}

// broadcast рассылает напоминание всем подписчикам
func (r *reminderService) broadcast() {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.subscribed))
	for id := range r.subscribed {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, chatID := range ids {
		r.bot.send(chatID, "⏰ Time to work out! 💪\nYour plan is waiting - press \""+btnExportTxt+"\" if you need a copy.")
	}
	if len(ids) > 0 {
		log.Printf("Отправлено напоминаний: %d", len(ids))
	}
}

// toggleReminder обрабатывает кнопку напоминаний в меню
func (b *Bot) toggleReminder(chatID int64) {
	if b.reminders.toggle(chatID) {
		b.send(chatID, fmt.Sprintf("⏰ Daily workout reminder enabled at %s.", b.config.ReminderTime))
	} else {
		b.send(chatID, "Workout reminders disabled.")
	}
}

// cronSpec переводит время ЧЧ:ММ в выражение планировщика
func cronSpec(at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("ожидается формат ЧЧ:ММ")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("некорректный час")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("некорректная минута")
	}

	// Планировщик использует шестипольный формат с секундами
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
