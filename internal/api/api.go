package api

import (
	"context"

	"github.com/DanRulev/quizmeon/internal/models"
	"go.uber.org/zap"
)

type QuizSI interface {
	Generate(ctx context.Context, req models.GenerateRequest) (models.Quiz, error)
	Quiz(ctx context.Context, id string) (models.Quiz, error)
	Save(ctx context.Context, quiz models.Quiz) (string, error)
}

type Handler struct {
	service QuizSI
	log     *zap.Logger
}

func NewHandler(service QuizSI, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}
