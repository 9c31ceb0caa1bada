package ai

import (
	"context"
	"fmt"

	"planbot/internal/models"
	"planbot/internal/usage"
)

// RequestTypePlan - метка запроса генерации плана в журнале использования.
const RequestTypePlan = "Workout Plan Generation"

// PlanGenerator генерирует план тренировок по анкете пользователя.
type PlanGenerator struct {
	client *Client
}

// NewPlanGenerator создаёт генератор поверх клиента модели.
func NewPlanGenerator(client *Client) *PlanGenerator {
	return &PlanGenerator{client: client}
}

// Generate строит промпт, запрашивает модель и возвращает сырой JSON-ответ
// вместе с расходом токенов. Запись в журнал делается только при успехе.
func (g *PlanGenerator) Generate(ctx context.Context, profile models.Profile, ledger *usage.Ledger) (string, TokenUsage, error) {
	prompt := BuildPlanPrompt(profile)

	raw, tokens, err := g.client.ChatJSON(ctx, SystemPrompt, prompt)
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("ошибка генерации плана тренировок: %w", err)
	}

	if ledger != nil {
		ledger.Record(RequestTypePlan, tokens.InputTokens, tokens.OutputTokens)
	}

	return raw, tokens, nil
}
