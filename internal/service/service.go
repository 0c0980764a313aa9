package service

import (
	"context"

	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/DanRulev/quizmeon/internal/models"
	"go.uber.org/zap"
)

type GeminiAPII interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type APII interface {
	GeminiAPII
}

type QuizRI interface {
	FindByID(ctx context.Context, id string) (models.Quiz, error)
	Save(ctx context.Context, quiz models.Quiz) (string, error)
}

type RepositoryI interface {
	QuizRI
}

type Service struct {
	*QuizS
}

func InitServices(api APII, repo RepositoryI, cfg config.AppConfig, log *zap.Logger) *Service {
	return &Service{
		QuizS: NewQuizService(api, repo, cfg, log),
	}
}
