// Package session drives a single quiz attempt on the client: loading the
// quiz into local storage, recording answers, scoring and the result page
// actions (retry, share, home).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/DanRulev/quizmeon/internal/models"
)

const (
	KeyQuiz    = "quizData"
	KeyScore   = "quizScore"
	KeyAnswers = "userAnswers"
)

var (
	ErrNotReady       = errors.New("quiz is not ready")
	ErrQuestionIndex  = errors.New("question index out of range")
	ErrUnknownOption  = errors.New("option is not one of the question options")
	ErrNothingToShare = errors.New("no quiz found to share")
)

// Storage is the local key/value store the session state lives in.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

type GeneratorI interface {
	Generate(ctx context.Context, req models.GenerateRequest) (models.Quiz, error)
}

type FetcherI interface {
	Quiz(ctx context.Context, id string) (models.Quiz, error)
}

type SaverI interface {
	Save(ctx context.Context, quiz models.Quiz) (string, error)
}

type ClipboardI interface {
	Copy(text string) error
}

// Source supplies a quiz when nothing usable is cached.
type Source interface {
	Fetch(ctx context.Context) (models.Quiz, error)
}

type SourceFunc func(ctx context.Context) (models.Quiz, error)

func (f SourceFunc) Fetch(ctx context.Context) (models.Quiz, error) {
	return f(ctx)
}

func GenerateSource(api GeneratorI, req models.GenerateRequest) Source {
	return SourceFunc(func(ctx context.Context) (models.Quiz, error) {
		return api.Generate(ctx, req)
	})
}

func SharedSource(api FetcherI, id string) Source {
	return SourceFunc(func(ctx context.Context) (models.Quiz, error) {
		return api.Quiz(ctx, id)
	})
}

// Answers maps a question index to the selected option. Unanswered
// questions have no entry.
type Answers map[int]string

func (a Answers) clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Score counts the questions whose selected option equals the correct answer.
func Score(quiz models.Quiz, answers Answers) int {
	score := 0
	for i, q := range quiz.Questions {
		if selected, ok := answers[i]; ok && selected == q.CorrectAnswer {
			score++
		}
	}
	return score
}

func decodeQuiz(raw string) (models.Quiz, error) {
	var quiz models.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return models.Quiz{}, err
	}
	if len(quiz.Questions) == 0 {
		return models.Quiz{}, models.ErrNoQuestions
	}
	return quiz, nil
}

func decodeAnswers(raw string) (Answers, error) {
	var answers Answers
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = Answers{}
	}
	return answers, nil
}

func decodeScore(raw string) (int, error) {
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if score < 0 {
		return 0, fmt.Errorf("negative score %d", score)
	}
	return score, nil
}

func storeJSON(storage Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := storage.Set(key, string(b)); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
