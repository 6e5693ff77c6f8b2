package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
)

var ErrArchiveNotFound = errors.New("questions archive not found")

const (
	questionMarker = "Вопрос"
	answerMarker   = "Ответ"
)

// LoadArchive reads all KOI8-R encoded *.txt files in dir.
// Files that cannot be read are logged and skipped.
func LoadArchive(dir string, logger *zap.Logger) ([]entities.Question, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("list archive files: %w", err)
	}
	sort.Strings(files)

	var questions []entities.Question
	for _, path := range files {
		text, err := readKOI8R(path)
		if err != nil {
			logger.Warn("skip archive file",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		parsed := ParseArchive(text)
		logger.Debug("archive file parsed",
			zap.String("path", path),
			zap.Int("questions", len(parsed)),
		)
		questions = append(questions, parsed...)
	}

	logger.Info("questions archive loaded",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("questions", len(questions)),
	)

	return questions, nil
}

// ParseArchive extracts question/answer pairs from a decoded archive file.
// Blocks are separated by blank lines. Questions and answers are paired in
// order of appearance; unmatched trailing blocks are dropped.
func ParseArchive(text string) []entities.Question {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var questions, answers []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		switch {
		case strings.HasPrefix(block, questionMarker):
			questions = append(questions, blockText(block))
		case strings.HasPrefix(block, answerMarker):
			answers = append(answers, blockText(block))
		}
	}

	n := min(len(questions), len(answers))
	out := make([]entities.Question, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Question{Text: questions[i], Answer: answers[i]})
	}

	return out
}

// blockText returns the text after the block header, joined into one line.
func blockText(block string) string {
	if _, after, found := strings.Cut(block, ":"); found {
		block = after
	}
	return strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
}

func readKOI8R(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	decoded, err := charmap.KOI8R.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode koi8-r: %w", err)
	}

	return string(decoded), nil
}
