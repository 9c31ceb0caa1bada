// Package ai инкапсулирует работу с языковой моделью: клиент OpenAI,
// построение промпта и генерацию плана тренировок.
package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// DefaultModel используется, если модель не задана в конфигурации.
const DefaultModel = "gpt-4o"

// TokenUsage - количество токенов, потраченных на один запрос
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Client - клиент для работы с OpenAI-совместимым API
type Client struct {
	api   openai.Client
	model string
}

// NewClient создаёт новый клиент. baseURL пустой - используется
// стандартный адрес OpenAI.
func NewClient(apiKey, baseURL, model string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   openai.NewClient(opts...),
		model: model,
	}
}

// Model возвращает имя используемой модели.
func (c *Client) Model() string {
	return c.model
}

// ChatJSON отправляет системное и пользовательское сообщение и требует
// от модели ответ в формате JSON. Возвращает текст ответа и расход токенов.
func (c *Client) ChatJSON(ctx context.Context, systemPrompt, userMessage string) (string, TokenUsage, error) {
	chat, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
		Model: c.model,
	})
	if err != nil {
		return "", TokenUsage{}, fmt.Errorf("ошибка запроса к модели: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", TokenUsage{}, fmt.Errorf("пустой ответ от API")
	}

	usage := TokenUsage{
		InputTokens:  int(chat.Usage.PromptTokens),
		OutputTokens: int(chat.Usage.CompletionTokens),
	}
	return chat.Choices[0].Message.Content, usage, nil
}
