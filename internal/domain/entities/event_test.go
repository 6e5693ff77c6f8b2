package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyText(t *testing.T) {
	tests := []struct {
		text string
		want EventKind
	}{
		{"Новый вопрос", EventNewQuestion},
		{"  Новый вопрос ", EventNewQuestion},
		{"Сдаться", EventGiveUp},
		{"/start", EventStart},
		{"/cancel", EventCancel},
		{"новый вопрос", EventAnswer},
		{"Мой счёт", EventAnswer},
		{"Париж", EventAnswer},
		{"", EventAnswer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyText(tt.text), "text %q", tt.text)
	}
}

func TestSessionKeysDoNotCollideAcrossPlatforms(t *testing.T) {
	tg := NewSessionKey(PlatformTelegram, 42)
	vk := NewSessionKey(PlatformVK, 42)

	assert.Equal(t, "telegram_42", tg.String())
	assert.Equal(t, "vk_42", vk.String())
	assert.NotEqual(t, tg.String(), vk.String())
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(PlatformVK, 7, " Сдаться\n")

	assert.Equal(t, EventGiveUp, e.Kind)
	assert.Equal(t, "Сдаться", e.Text)
	assert.Equal(t, SessionKey{Platform: PlatformVK, UserID: "7"}, e.Key())
}

func TestNewMessageCarriesDefaultKeyboard(t *testing.T) {
	m := NewMessage("hi")

	assert.Equal(t, []string{LabelNewQuestion, LabelGiveUp, LabelMyScore}, m.Keyboard)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateIdle, StateOf(false))
	assert.Equal(t, StateAwaitingAnswer, StateOf(true))
	assert.Equal(t, "awaiting_answer", StateAwaitingAnswer.String())
}
