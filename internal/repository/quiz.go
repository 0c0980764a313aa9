package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/google/uuid"
)

type QuizR struct {
	conn ConnectorI
}

func NewQuizRepository(conn ConnectorI) *QuizR {
	return &QuizR{
		conn: conn,
	}
}

func (q *QuizR) FindByID(ctx context.Context, id string) (models.Quiz, error) {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("%w: %v", models.ErrNotFound, id)
	}

	db, err := q.conn.Query(ctx)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("database unavailable: %w", err)
	}

	query := `SELECT id, title, difficulty, questions FROM quizzes WHERE id = $1`

	var quiz models.Quiz
	err = db.GetContext(ctx, &quiz, query, quizID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quiz{}, fmt.Errorf("%w: %v", models.ErrNotFound, id)
		}
		return models.Quiz{}, fmt.Errorf("database error: %w", err)
	}

	return quiz, nil
}

func (q *QuizR) Save(ctx context.Context, quiz models.Quiz) (string, error) {
	db, err := q.conn.Query(ctx)
	if err != nil {
		return "", fmt.Errorf("database unavailable: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO quizzes (id, title, difficulty, questions)
		VALUES ($1, $2, $3, $4)
	`

	_, err = db.ExecContext(ctx, query, id, quiz.Title, string(quiz.Difficulty), quiz.Questions)
	if err != nil {
		return "", fmt.Errorf("failed to save quiz %q: %w", quiz.Title, err)
	}

	return id, nil
}
