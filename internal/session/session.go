// Package session хранит состояние одной пользовательской сессии:
// анкету, сгенерированный план и журнал расхода токенов.
package session

import (
	"time"

	"github.com/google/uuid"

	"planbot/clients/ai"
	"planbot/internal/models"
	"planbot/internal/usage"
)

// Session - состояние одной сессии генерации плана
type Session struct {
	ID        string
	CreatedAt time.Time

	Profile models.Profile

	// Результат последней генерации
	RawPlan        string
	Days           []models.Day
	LatestUsage    ai.TokenUsage
	GenerationTime time.Duration

	Ledger *usage.Ledger
}

// New создаёт пустую сессию с новым идентификатором.
func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Ledger:    usage.NewLedger(),
	}
}

// HasPlan сообщает, есть ли в сессии готовый план.
func (s *Session) HasPlan() bool {
	return len(s.Days) > 0
}

// ResetPlan сбрасывает результат генерации. Анкета и журнал расхода
// токенов остаются: журнал копит статистику за всю сессию.
func (s *Session) ResetPlan() {
	s.RawPlan = ""
	s.Days = nil
	s.LatestUsage = ai.TokenUsage{}
	s.GenerationTime = 0
}
