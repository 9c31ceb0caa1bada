// Package usage ведёт учёт токенов и стоимости обращений к модели за сессию.
package usage

import (
	"sync"
	"time"
)

// Тарифы модели в долларах за миллион токенов.
const (
	InputCostPerMillion  = 2.50
	OutputCostPerMillion = 10.00
)

// Record — один зафиксированный вызов модели.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	Type         string    `json:"type"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	TotalTokens  int       `json:"total_tokens"`
	InputCost    float64   `json:"input_cost"`
	OutputCost   float64   `json:"output_cost"`
	TotalCost    float64   `json:"total_cost"`
}

// Totals — накопленные итоги по сессии.
type Totals struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Cost         float64
	Requests     int
}

// Ledger накапливает статистику использования модели. Безопасен для
// конкурентного доступа, создаётся на каждую сессию отдельно.
type Ledger struct {
	mu      sync.Mutex
	totals  Totals
	records []Record
}

// NewLedger возвращает пустой журнал использования.
func NewLedger() *Ledger {
	return &Ledger{}
}

// CalculateCosts считает стоимость запроса по числу токенов.
func CalculateCosts(inputTokens, outputTokens int) (inputCost, outputCost, totalCost float64) {
	inputCost = float64(inputTokens) / 1_000_000 * InputCostPerMillion
	outputCost = float64(outputTokens) / 1_000_000 * OutputCostPerMillion
	return inputCost, outputCost, inputCost + outputCost
}

// Record фиксирует один вызов модели и возвращает созданную запись.
func (l *Ledger) Record(requestType string, inputTokens, outputTokens int) Record {
	inputCost, outputCost, totalCost := CalculateCosts(inputTokens, outputTokens)

	rec := Record{
		Timestamp:    time.Now(),
		Type:         requestType,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		InputCost:    inputCost,
		OutputCost:   outputCost,
		TotalCost:    totalCost,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, rec)
	l.totals.InputTokens += rec.InputTokens
	l.totals.OutputTokens += rec.OutputTokens
	l.totals.TotalTokens += rec.TotalTokens
	l.totals.Cost += rec.TotalCost
	l.totals.Requests++

	return rec
}

// Totals возвращает накопленные итоги.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals
}

// Records возвращает копию списка записей в порядке добавления.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}
