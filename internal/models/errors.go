package models

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("quiz not found")
	ErrTimeout    = errors.New("request timed out")

	ErrNoQuestions = errors.New("quiz has no questions")
)
