package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

type Taker struct {
	storage Storage
	source  Source
	log     *zap.Logger

	mu      sync.Mutex
	state   State
	quiz    models.Quiz
	answers Answers
}

func NewTaker(storage Storage, source Source, log *zap.Logger) *Taker {
	return &Taker{
		storage: storage,
		source:  source,
		log:     log,
		answers: Answers{},
	}
}

// Load prefers the cached quiz. A cached entry that cannot be decoded is
// removed before the source is asked for a fresh quiz. On failure the taker
// stays in Loading and nothing is retried.
func (t *Taker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if raw, ok := t.storage.Get(KeyQuiz); ok {
		quiz, err := decodeQuiz(raw)
		if err == nil {
			t.quiz = quiz
			t.answers = t.cachedAnswers(len(quiz.Questions))
			t.state = Ready
			t.log.Debug("loaded quiz from storage", zap.String("title", quiz.Title))
			return nil
		}

		t.log.Warn("dropping unreadable cached quiz", zap.Error(err))
		if err := t.storage.Remove(KeyQuiz); err != nil {
			t.log.Warn("failed to remove cached quiz", zap.Error(err))
		}
	}

	t.state = Loading

	quiz, err := t.source.Fetch(ctx)
	if err != nil {
		t.log.Error("failed to fetch quiz", zap.Error(err))
		return fmt.Errorf("fetch quiz: %w", err)
	}
	if len(quiz.Questions) == 0 {
		t.log.Warn("fetched quiz is empty", zap.String("title", quiz.Title))
		return models.ErrNoQuestions
	}

	if err := storeJSON(t.storage, KeyQuiz, quiz); err != nil {
		t.log.Warn("failed to cache quiz", zap.Error(err))
	}

	t.quiz = quiz
	t.answers = Answers{}
	t.state = Ready
	return nil
}

func (t *Taker) cachedAnswers(n int) Answers {
	answers := Answers{}

	raw, ok := t.storage.Get(KeyAnswers)
	if !ok {
		return answers
	}

	cached, err := decodeAnswers(raw)
	if err != nil {
		t.log.Warn("ignoring unreadable cached answers", zap.Error(err))
		return answers
	}
	for i, option := range cached {
		if i >= 0 && i < n {
			answers[i] = option
		}
	}
	return answers
}

// Answer records the option picked for question index. A later answer to
// the same question replaces the earlier one.
func (t *Taker) Answer(index int, option string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Ready {
		return fmt.Errorf("%w: state %s", ErrNotReady, t.state)
	}
	if index < 0 || index >= len(t.quiz.Questions) {
		return fmt.Errorf("%w: %d", ErrQuestionIndex, index)
	}
	if !lo.Contains(t.quiz.Questions[index].Options, option) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}

	t.answers[index] = option
	return storeJSON(t.storage, KeyAnswers, t.answers)
}

func (t *Taker) Submit() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Ready {
		return 0, fmt.Errorf("%w: state %s", ErrNotReady, t.state)
	}

	score := Score(t.quiz, t.answers)

	if err := t.storage.Set(KeyScore, strconv.Itoa(score)); err != nil {
		return 0, fmt.Errorf("store %s: %w", KeyScore, err)
	}
	if err := storeJSON(t.storage, KeyAnswers, t.answers); err != nil {
		return 0, err
	}

	t.state = Submitted
	return score, nil
}

func (t *Taker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Taker) Quiz() models.Quiz {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quiz
}

func (t *Taker) Answers() Answers {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.answers.clone()
}
