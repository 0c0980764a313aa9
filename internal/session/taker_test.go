package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DanRulev/quizmeon/internal/models"
	mock_session "github.com/DanRulev/quizmeon/internal/session/mock"
	"github.com/DanRulev/quizmeon/internal/storage/cache"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func capitalsQuiz() models.Quiz {
	return models.Quiz{
		Title:      "Capitals",
		Difficulty: models.DifficultyEasy,
		Questions: models.Questions{
			{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, CorrectAnswer: "Paris"},
			{Question: "Capital of Italy?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, CorrectAnswer: "Rome"},
			{Question: "Capital of Spain?", Options: []string{"Paris", "Rome", "Madrid", "Berlin"}, CorrectAnswer: "Madrid"},
		},
	}
}

func quizJSON(t *testing.T, quiz models.Quiz) string {
	t.Helper()

	b, err := json.Marshal(quiz)
	require.NoError(t, err)
	return string(b)
}

func newTakerMock(t *testing.T, ctrl *gomock.Controller, storage Storage, setupMock func(*mock_session.MockSource)) *Taker {
	source := mock_session.NewMockSource(ctrl)
	if setupMock != nil {
		setupMock(source)
	}

	return NewTaker(storage, source, zap.NewNop())
}

func TestTaker_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cached     map[string]string
		f          func(*mock_session.MockSource)
		wantErr    error
		wantState  State
		wantCached bool
		wantAns    Answers
	}{
		{
			name:       "uses cached quiz",
			cached:     map[string]string{KeyQuiz: quizJSON(t, capitalsQuiz())},
			wantState:  Ready,
			wantCached: true,
			wantAns:    Answers{},
		},
		{
			name: "restores cached answers in range",
			cached: map[string]string{
				KeyQuiz:    quizJSON(t, capitalsQuiz()),
				KeyAnswers: `{"0":"Paris","7":"Rome"}`,
			},
			wantState:  Ready,
			wantCached: true,
			wantAns:    Answers{0: "Paris"},
		},
		{
			name:   "fetches when nothing cached",
			cached: map[string]string{},
			f: func(ms *mock_session.MockSource) {
				ms.EXPECT().Fetch(gomock.Any()).Return(capitalsQuiz(), nil)
			},
			wantState:  Ready,
			wantCached: true,
			wantAns:    Answers{},
		},
		{
			name:   "corrupt cache is dropped then fetched",
			cached: map[string]string{KeyQuiz: `{"title":`},
			f: func(ms *mock_session.MockSource) {
				ms.EXPECT().Fetch(gomock.Any()).Return(capitalsQuiz(), nil)
			},
			wantState:  Ready,
			wantCached: true,
			wantAns:    Answers{},
		},
		{
			name:   "cached quiz without questions is refetched",
			cached: map[string]string{KeyQuiz: `{"title":"x","questions":[]}`},
			f: func(ms *mock_session.MockSource) {
				ms.EXPECT().Fetch(gomock.Any()).Return(capitalsQuiz(), nil)
			},
			wantState:  Ready,
			wantCached: true,
			wantAns:    Answers{},
		},
		{
			name:   "fetch failure stays loading",
			cached: map[string]string{},
			f: func(ms *mock_session.MockSource) {
				ms.EXPECT().Fetch(gomock.Any()).Return(models.Quiz{}, assert.AnError)
			},
			wantErr:   assert.AnError,
			wantState: Loading,
		},
		{
			name:   "empty fetched quiz stays loading",
			cached: map[string]string{},
			f: func(ms *mock_session.MockSource) {
				ms.EXPECT().Fetch(gomock.Any()).Return(models.Quiz{Title: "empty"}, nil)
			},
			wantErr:   models.ErrNoQuestions,
			wantState: Loading,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := cache.NewCache()
			for k, v := range tt.cached {
				require.NoError(t, storage.Set(k, v))
			}

			taker := newTakerMock(t, ctrl, storage, tt.f)
			assert.Equal(t, Idle, taker.State())

			err := taker.Load(context.Background())
			assert.Equal(t, tt.wantState, taker.State())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, ok := storage.Get(KeyQuiz)
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, capitalsQuiz(), taker.Quiz())
			assert.Equal(t, tt.wantAns, taker.Answers())

			raw, ok := storage.Get(KeyQuiz)
			assert.Equal(t, tt.wantCached, ok)
			assert.JSONEq(t, quizJSON(t, capitalsQuiz()), raw)
		})
	}
}

func TestTaker_AnswerAndSubmit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := cache.NewCache()
	taker := newTakerMock(t, ctrl, storage, func(ms *mock_session.MockSource) {
		ms.EXPECT().Fetch(gomock.Any()).Return(capitalsQuiz(), nil)
	})

	assert.ErrorIs(t, taker.Answer(0, "Paris"), ErrNotReady)
	_, err := taker.Submit()
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, taker.Load(context.Background()))

	require.NoError(t, taker.Answer(0, "Rome"))
	require.NoError(t, taker.Answer(0, "Paris"))
	require.NoError(t, taker.Answer(2, "Berlin"))
	assert.ErrorIs(t, taker.Answer(3, "Paris"), ErrQuestionIndex)
	assert.ErrorIs(t, taker.Answer(-1, "Paris"), ErrQuestionIndex)
	assert.ErrorIs(t, taker.Answer(1, "London"), ErrUnknownOption)

	raw, ok := storage.Get(KeyAnswers)
	require.True(t, ok)
	assert.JSONEq(t, `{"0":"Paris","2":"Berlin"}`, raw)

	score, err := taker.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, Submitted, taker.State())

	raw, ok = storage.Get(KeyScore)
	require.True(t, ok)
	assert.Equal(t, "1", raw)

	assert.ErrorIs(t, taker.Answer(1, "Rome"), ErrNotReady)
	_, err = taker.Submit()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestScore(t *testing.T) {
	t.Parallel()

	quiz := capitalsQuiz()

	tests := []struct {
		name    string
		answers Answers
		want    int
	}{
		{name: "no answers", answers: Answers{}, want: 0},
		{name: "nil answers", answers: nil, want: 0},
		{name: "all correct", answers: Answers{0: "Paris", 1: "Rome", 2: "Madrid"}, want: 3},
		{name: "partial", answers: Answers{1: "Rome", 2: "Paris"}, want: 1},
		{name: "out of range ignored", answers: Answers{5: "Paris", 0: "Paris"}, want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first := Score(quiz, tt.answers)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, Score(quiz, tt.answers))
		})
	}
}

func TestSources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	req := models.GenerateRequest{Title: "Capitals", Difficulty: "Easy", NumQuestions: 3}

	gen := GenerateSource(generatorFunc(func(_ context.Context, got models.GenerateRequest) (models.Quiz, error) {
		assert.Equal(t, req, got)
		return capitalsQuiz(), nil
	}), req)
	quiz, err := gen.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Capitals", quiz.Title)

	shared := SharedSource(fetcherFunc(func(_ context.Context, id string) (models.Quiz, error) {
		assert.Equal(t, "abc", id)
		return models.Quiz{}, models.ErrNotFound
	}), "abc")
	_, err = shared.Fetch(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

type generatorFunc func(context.Context, models.GenerateRequest) (models.Quiz, error)

func (f generatorFunc) Generate(ctx context.Context, req models.GenerateRequest) (models.Quiz, error) {
	return f(ctx, req)
}

type fetcherFunc func(context.Context, string) (models.Quiz, error)

func (f fetcherFunc) Quiz(ctx context.Context, id string) (models.Quiz, error) {
	return f(ctx, id)
}
