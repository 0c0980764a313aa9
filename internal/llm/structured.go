// Package llm turns free-text model output into typed values in three
// independent stages: fenced-block extraction, JSON decoding and schema
// validation.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrUpstream       = errors.New("model call failed")
	ErrEmptyResponse  = errors.New("empty model response")
	ErrMalformedJSON  = errors.New("malformed JSON in model response")
	ErrSchemaMismatch = errors.New("model response does not match schema")
)

type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Validator[T any] func(*T) error

var jsonFence = regexp.MustCompile("(?s)```json(.*?)```")

// ExtractFenced returns the body of the first ```json fence, or the whole
// trimmed text when there is none.
func ExtractFenced(text string) string {
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

func Decode[T any](payload string) (T, error) {
	var out T
	if strings.TrimSpace(payload) == "" {
		return out, ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return out, nil
}

func Validate[T any](v *T, validators ...Validator[T]) error {
	for _, validate := range validators {
		if validate == nil {
			continue
		}
		if err := validate(v); err != nil {
			return fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}
	}
	return nil
}

// Result carries the decoded value together with the raw model text, which
// callers log when a later stage rejects it.
type Result[T any] struct {
	Value T
	Raw   string
}

func Call[T any](ctx context.Context, gen Generator, prompt string, validators ...Validator[T]) (Result[T], error) {
	raw, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return Result[T]{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	res := Result[T]{Raw: raw}

	value, err := Decode[T](ExtractFenced(raw))
	if err != nil {
		return res, err
	}

	if err := Validate(&value, validators...); err != nil {
		return res, err
	}

	res.Value = value
	return res, nil
}
