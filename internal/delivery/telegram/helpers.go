package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// newKeyboardMessage creates a plain text message with the reply keyboard attached.
// Question texts come from the archive as is, so no parse mode is set.
func newKeyboardMessage(chatID int64, m entities.Message) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, m.Text)
	if len(m.Keyboard) > 0 {
		msg.ReplyMarkup = buildReplyKeyboard(m.Keyboard)
	}
	return msg
}
