package vk

import (
	"encoding/json"

	"github.com/SevereCloud/vksdk/v2/object"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

// Button colors understood by the VK keyboard API.
const (
	colorPrimary   = "primary"
	colorNegative  = "negative"
	colorSecondary = "secondary"
)

// buttonColor returns the color of a keyboard option.
func buttonColor(label string) string {
	switch label {
	case entities.LabelNewQuestion:
		return colorPrimary
	case entities.LabelGiveUp:
		return colorNegative
	default:
		return colorSecondary
	}
}

// buildKeyboard returns the JSON of a persistent keyboard.
// The first two options share a row, the rest are placed on the next one.
func buildKeyboard(options []string) (string, error) {
	kb := object.NewMessagesKeyboard(false)
	kb.AddRow()
	for i, label := range options {
		if i == 2 {
			kb.AddRow()
		}
		kb.AddTextButton(label, "", buttonColor(label))
	}

	data, err := json.Marshal(kb)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
