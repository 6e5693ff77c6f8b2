// Package entities contains domain entities used across the application.
package entities

// Question is a single question/answer pair from the archive.
type Question struct {
	Text   string // question text, used as the lookup key
	Answer string // canonical answer, may carry a trailing clarification
}
