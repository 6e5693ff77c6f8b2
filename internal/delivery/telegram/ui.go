package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// firstRowSize is the number of buttons in the top keyboard row.
const firstRowSize = 2

// buildReplyKeyboard builds the persistent reply keyboard from ordered options.
// The first two options share a row, the rest are placed on the next one.
func buildReplyKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	n := min(firstRowSize, len(options))

	rows := [][]tgbotapi.KeyboardButton{buttonRow(options[:n])}
	if len(options) > n {
		rows = append(rows, buttonRow(options[n:]))
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func buttonRow(labels []string) []tgbotapi.KeyboardButton {
	row := make([]tgbotapi.KeyboardButton, 0, len(labels))
	for _, l := range labels {
		row = append(row, tgbotapi.NewKeyboardButton(l))
	}
	return tgbotapi.NewKeyboardButtonRow(row...)
}
