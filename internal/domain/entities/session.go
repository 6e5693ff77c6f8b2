package entities

import "fmt"

// Platform identifies the chat transport an event came from.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformVK       Platform = "vk"
)

// SessionKey identifies a user's session across platforms.
// Keys of different platforms never collide even if user IDs do.
type SessionKey struct {
	Platform Platform // transport the user talks through
	UserID   string   // platform-specific user ID
}

// NewSessionKey creates a SessionKey for a numeric platform user ID.
func NewSessionKey(platform Platform, userID int64) SessionKey {
	return SessionKey{Platform: platform, UserID: fmt.Sprint(userID)}
}

// String returns the durable store key, e.g. "telegram_42".
func (k SessionKey) String() string {
	return string(k.Platform) + "_" + k.UserID
}

// State is the conversational state of a session.
// It is never persisted: it is derived from the presence of a stored question.
type State int

const (
	StateIdle State = iota
	StateAwaitingAnswer
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StateOf derives the session state from a store lookup result.
func StateOf(hasQuestion bool) State {
	if hasQuestion {
		return StateAwaitingAnswer
	}
	return StateIdle
}
