package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/quizmeon/internal/models"
	"go.uber.org/zap"
)

const NoResultMessage = "No result found. Try taking a quiz!"

type Result struct {
	Quiz    models.Quiz
	Score   int
	Answers Answers

	hasQuiz  bool
	hasScore bool
}

type ReviewItem struct {
	Index    int
	Question string
	Options  []string
	Selected string
	Answered bool
	Correct  string
}

func (r ReviewItem) IsCorrect() bool {
	return r.Answered && r.Selected == r.Correct
}

// LoadResult reads the score page state. Missing or unreadable entries are
// logged and treated as absent.
func LoadResult(storage Storage, log *zap.Logger) Result {
	var r Result

	if raw, ok := storage.Get(KeyQuiz); ok {
		quiz, err := decodeQuiz(raw)
		if err != nil {
			log.Warn("stored quiz is invalid", zap.Error(err))
		} else {
			r.Quiz, r.hasQuiz = quiz, true
		}
	} else {
		log.Debug("no stored quiz")
	}

	if raw, ok := storage.Get(KeyScore); ok {
		score, err := decodeScore(raw)
		if err != nil {
			log.Warn("stored score is invalid", zap.String("raw", raw), zap.Error(err))
		} else {
			r.Score, r.hasScore = score, true
		}
	} else {
		log.Debug("no stored score")
	}

	r.Answers = Answers{}
	if raw, ok := storage.Get(KeyAnswers); ok {
		answers, err := decodeAnswers(raw)
		if err != nil {
			log.Warn("stored answers are invalid", zap.Error(err))
		} else {
			r.Answers = answers
		}
	}

	return r
}

func (r Result) Found() bool {
	return r.hasScore
}

func (r Result) HasQuiz() bool {
	return r.hasQuiz
}

func (r Result) Title() string {
	if !r.hasQuiz || r.Quiz.Title == "" {
		return "Quiz"
	}
	return r.Quiz.Title
}

func (r Result) Review() []ReviewItem {
	items := make([]ReviewItem, 0, len(r.Quiz.Questions))
	for i, q := range r.Quiz.Questions {
		selected, answered := r.Answers[i]
		items = append(items, ReviewItem{
			Index:    i,
			Question: q.Question,
			Options:  q.Options,
			Selected: selected,
			Answered: answered,
			Correct:  q.CorrectAnswer,
		})
	}
	return items
}

// Share saves the cached quiz and copies an invitation to take it. The
// returned message is what was copied.
func (r Result) Share(ctx context.Context, saver SaverI, clipboard ClipboardI, origin string) (string, error) {
	if !r.hasQuiz {
		return "", ErrNothingToShare
	}

	id, err := saver.Save(ctx, r.Quiz)
	if err != nil {
		return "", fmt.Errorf("save quiz: %w", err)
	}

	msg := ShareMessage(r.Quiz.Title, origin, id)
	if err := clipboard.Copy(msg); err != nil {
		return "", fmt.Errorf("copy share link: %w", err)
	}
	return msg, nil
}

func ShareURL(origin, id string) string {
	return strings.TrimRight(origin, "/") + "/quiz/" + id
}

func ShareMessage(title, origin, id string) string {
	return fmt.Sprintf("Take the %s quiz here: %s", title, ShareURL(origin, id))
}

// Retry clears the attempt but keeps the cached quiz so the same questions
// come back.
func Retry(storage Storage) error {
	for _, key := range []string{KeyScore, KeyAnswers} {
		if err := storage.Remove(key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

// Home clears everything so the next attempt starts from a new quiz.
func Home(storage Storage) error {
	for _, key := range []string{KeyQuiz, KeyScore, KeyAnswers} {
		if err := storage.Remove(key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
