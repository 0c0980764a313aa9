package client

import (
	"context"

	"github.com/DanRulev/quizmeon/internal/config"
)

type Clients struct {
	*GeminiAPI
}

func InitClients(ctx context.Context, cfg config.GeminiConfig) (Clients, error) {
	gemini, err := NewGeminiAPI(ctx, cfg)
	if err != nil {
		return Clients{}, err
	}

	return Clients{
		GeminiAPI: gemini,
	}, nil
}

func (c Clients) Close() error {
	if c.GeminiAPI == nil {
		return nil
	}
	return c.GeminiAPI.Close()
}
