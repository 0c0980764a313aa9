package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/DanRulev/quizmeon/internal/llm"
	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/DanRulev/quizmeon/pkg/validator"
	"go.uber.org/zap"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxQuestions = 50
)

type QuizS struct {
	gemini       GeminiAPII
	repo         QuizRI
	timeout      time.Duration
	maxQuestions int
	log          *zap.Logger
}

func NewQuizService(api GeminiAPII, repo QuizRI, cfg config.AppConfig, log *zap.Logger) *QuizS {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxQuestions := cfg.MaxQuestions
	if maxQuestions <= 0 {
		maxQuestions = defaultMaxQuestions
	}

	return &QuizS{
		gemini:       api,
		repo:         repo,
		timeout:      timeout,
		maxQuestions: maxQuestions,
		log:          log,
	}
}

func (q *QuizS) Generate(ctx context.Context, req models.GenerateRequest) (models.Quiz, error) {
	req.Title = strings.TrimSpace(req.Title)
	difficulty, ok := models.ParseDifficulty(req.Difficulty)
	req.Difficulty = string(difficulty)
	if !ok || validator.ValidateStruct(req) != nil {
		return models.Quiz{}, fmt.Errorf("%w: title, difficulty, and a valid number of questions are required", models.ErrValidation)
	}
	if req.NumQuestions > q.maxQuestions {
		return models.Quiz{}, fmt.Errorf("%w: at most %d questions can be generated", models.ErrValidation, q.maxQuestions)
	}

	prompt := BuildQuizPrompt(req.Title, difficulty, req.NumQuestions)

	genCtx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	start := time.Now()
	res, err := q.call(genCtx, prompt, quizSchema(difficulty, req.NumQuestions))
	if errors.Is(genCtx.Err(), context.DeadlineExceeded) {
		q.log.Warn("quiz generation timed out", zap.String("title", req.Title), zap.Duration("timeout", q.timeout))
		return models.Quiz{}, fmt.Errorf("%w after %s", models.ErrTimeout, q.timeout)
	}
	if err != nil {
		q.log.Error("quiz generation failed",
			zap.String("title", req.Title),
			zap.String("difficulty", req.Difficulty),
			zap.Int("num_questions", req.NumQuestions),
			zap.String("raw_response", res.Raw),
			zap.Error(err),
		)
		return models.Quiz{}, err
	}

	q.log.Info("quiz generated",
		zap.String("title", res.Value.Title),
		zap.Int("questions", len(res.Value.Questions)),
		zap.Duration("took", time.Since(start)),
	)

	return res.Value, nil
}

type callResult struct {
	res llm.Result[models.Quiz]
	err error
}

// call returns as soon as ctx is done, even when the model client does not
// honour cancellation itself.
func (q *QuizS) call(ctx context.Context, prompt string, schema llm.Validator[models.Quiz]) (llm.Result[models.Quiz], error) {
	done := make(chan callResult, 1)
	go func() {
		res, err := llm.Call[models.Quiz](ctx, q.gemini, prompt, schema)
		done <- callResult{res: res, err: err}
	}()

	select {
	case r := <-done:
		return r.res, r.err
	case <-ctx.Done():
		return llm.Result[models.Quiz]{}, fmt.Errorf("%w: %w", llm.ErrUpstream, ctx.Err())
	}
}

func (q *QuizS) Quiz(ctx context.Context, id string) (models.Quiz, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Quiz{}, fmt.Errorf("%w: quiz id is required", models.ErrValidation)
	}

	quiz, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			q.log.Error("failed to fetch quiz", zap.String("quiz_id", id), zap.Error(err))
		}
		return models.Quiz{}, err
	}

	return quiz, nil
}

func (q *QuizS) Save(ctx context.Context, quiz models.Quiz) (string, error) {
	quiz.ID = ""
	quiz.Title = strings.TrimSpace(quiz.Title)
	if d, ok := models.ParseDifficulty(string(quiz.Difficulty)); ok {
		quiz.Difficulty = d
	}

	if err := validator.ValidateStruct(quiz); err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	id, err := q.repo.Save(ctx, quiz)
	if err != nil {
		q.log.Error("failed to save quiz", zap.String("title", quiz.Title), zap.Error(err))
		return "", err
	}

	q.log.Info("quiz saved", zap.String("quiz_id", id), zap.String("title", quiz.Title))
	return id, nil
}

func quizSchema(difficulty models.Difficulty, numQuestions int) llm.Validator[models.Quiz] {
	return func(quiz *models.Quiz) error {
		quiz.ID = ""
		if d, ok := models.ParseDifficulty(string(quiz.Difficulty)); ok {
			quiz.Difficulty = d
		}

		if err := validator.ValidateStruct(quiz); err != nil {
			return err
		}
		if quiz.Difficulty != difficulty {
			return fmt.Errorf("difficulty %q, requested %q", quiz.Difficulty, difficulty)
		}
		if len(quiz.Questions) != numQuestions {
			return fmt.Errorf("got %d questions, requested %d", len(quiz.Questions), numQuestions)
		}
		return nil
	}
}
