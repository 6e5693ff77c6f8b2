package entities

import "strings"

// Keyboard labels shown to the user on every message.
const (
	LabelNewQuestion = "Новый вопрос"
	LabelGiveUp      = "Сдаться"
	LabelMyScore     = "Мой счёт" // declared but never handled, there is no scoring
)

// Commands accepted from transports that support them.
const (
	CommandStart  = "/start"
	CommandCancel = "/cancel"
)

// EventKind is the normalized meaning of an inbound message.
type EventKind int

const (
	EventAnswer EventKind = iota
	EventStart
	EventNewQuestion
	EventGiveUp
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventAnswer:
		return "answer"
	case EventStart:
		return "start"
	case EventNewQuestion:
		return "new_question"
	case EventGiveUp:
		return "give_up"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ClassifyText maps raw message text to an event kind.
// Matching is exact against the fixed labels; any other text is an answer attempt.
func ClassifyText(text string) EventKind {
	switch strings.TrimSpace(text) {
	case LabelNewQuestion:
		return EventNewQuestion
	case LabelGiveUp:
		return EventGiveUp
	case CommandStart:
		return EventStart
	case CommandCancel:
		return EventCancel
	default:
		return EventAnswer
	}
}

// Event is a platform-independent inbound message.
type Event struct {
	Platform Platform
	UserID   string
	Text     string
	Kind     EventKind
}

// NewEvent creates an Event and classifies its text.
func NewEvent(platform Platform, userID int64, text string) Event {
	text = strings.TrimSpace(text)
	return Event{
		Platform: platform,
		UserID:   NewSessionKey(platform, userID).UserID,
		Text:     text,
		Kind:     ClassifyText(text),
	}
}

// Key returns the session key of the event's sender.
func (e Event) Key() SessionKey {
	return SessionKey{Platform: e.Platform, UserID: e.UserID}
}

// Message is a platform-independent outbound message.
type Message struct {
	Text     string
	Keyboard []string
}

// DefaultKeyboard returns the fixed keyboard options in display order.
func DefaultKeyboard() []string {
	return []string{LabelNewQuestion, LabelGiveUp, LabelMyScore}
}

// NewMessage creates a message carrying the default keyboard.
func NewMessage(text string) Message {
	return Message{Text: text, Keyboard: DefaultKeyboard()}
}
