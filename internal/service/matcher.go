package service

import (
	"strings"
)

// IsCorrect reports whether userAnswer matches the canonical answer.
// Only the part of canonical before the first "." or "(" is compared;
// both sides are trimmed and compared case-insensitively.
func IsCorrect(userAnswer, canonical string) bool {
	if i := strings.IndexAny(canonical, ".("); i >= 0 {
		canonical = canonical[:i]
	}

	return strings.ToLower(strings.TrimSpace(userAnswer)) ==
		strings.ToLower(strings.TrimSpace(canonical))
}
