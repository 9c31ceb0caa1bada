package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// mainMenuKeyboard - клавиатура главного меню
func (b *Bot) mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNewPlan),
			tgbotapi.NewKeyboardButton(btnEditProfile),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnUsage),
			tgbotapi.NewKeyboardButton(btnReminders),
		),
	)
}

// planMenuKeyboard - клавиатура после успешной генерации плана
func (b *Bot) planMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnExportTxt),
			tgbotapi.NewKeyboardButton(btnExportJSON),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNewPlan),
			tgbotapi.NewKeyboardButton(btnEditProfile),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnUsage),
			tgbotapi.NewKeyboardButton(btnShowRaw),
		),
	)
}

// optionsKeyboard строит клавиатуру из списка вариантов, по одному в ряд,
// с кнопкой отмены внизу
func optionsKeyboard(options []string, extra ...string) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for _, opt := range options {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(opt)))
	}
	for _, e := range extra {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(e)))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)))
	return tgbotapi.NewReplyKeyboard(rows...)
}

// multiSelectKeyboard строит клавиатуру множественного выбора: выбранные
// варианты помечаются галочкой, внизу кнопки завершения и отмены
func multiSelectKeyboard(options, selected []string) tgbotapi.ReplyKeyboardMarkup {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	var rows [][]tgbotapi.KeyboardButton
	for _, opt := range options {
		label := opt
		if chosen[opt] {
			label = "✅ " + opt
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnDone),
		tgbotapi.NewKeyboardButton(btnCancel),
	))
	return tgbotapi.NewReplyKeyboard(rows...)
}
