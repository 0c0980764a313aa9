package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanRulev/quizmeon/internal/models"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) Generate(ctx context.Context, req models.GenerateRequest) (models.Quiz, error) {
	var quiz models.Quiz
	if err := c.doJSON(ctx, http.MethodPost, "/api/quiz/generate", req, &quiz); err != nil {
		return models.Quiz{}, err
	}
	return quiz, nil
}

func (c *Client) Quiz(ctx context.Context, id string) (models.Quiz, error) {
	if strings.TrimSpace(id) == "" {
		return models.Quiz{}, errors.New("quiz id is required")
	}

	var quiz models.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/api/quiz/"+url.PathEscape(id), nil, &quiz); err != nil {
		return models.Quiz{}, err
	}
	return quiz, nil
}

func (c *Client) Save(ctx context.Context, quiz models.Quiz) (string, error) {
	var resp models.SaveResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/quiz/save", quiz, &resp); err != nil {
		return "", err
	}
	if resp.QuizID == "" {
		return "", errors.New("save response has no quiz id")
	}
	return resp.QuizID, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil {
			apiErr.Message = strings.TrimSpace(payload.Error)
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(responseBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
