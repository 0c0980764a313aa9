package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrNoCandidates = errors.New("gemini returned no candidates")

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiAPI struct {
	client *genai.Client
	model  contentGenerator
}

func NewGeminiAPI(ctx context.Context, cfg config.GeminiConfig) (*GeminiAPI, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)

	return &GeminiAPI{
		client: client,
		model:  model,
	}, nil
}

// GenerateText sends prompt as a single text part and joins the text parts of
// the first candidate. The call is abandoned as soon as ctx is done.
func (g *GeminiAPI) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoCandidates
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}

func (g *GeminiAPI) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
