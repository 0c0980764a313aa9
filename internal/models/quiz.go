package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyHard         Difficulty = "Hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyIntermediate, DifficultyHard}

// ParseDifficulty matches s against the known levels ignoring case and
// surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

type Question struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required,member=Options"`
}

type Questions []Question

func (q Questions) Value() (driver.Value, error) {
	if q == nil {
		q = Questions{}
	}
	b, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (q *Questions) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*q = nil
		return nil
	default:
		return fmt.Errorf("unsupported questions column type %T", src)
	}
	return json.Unmarshal(data, q)
}

type Quiz struct {
	ID         string     `json:"_id,omitempty" db:"id"`
	Title      string     `json:"title" db:"title" validate:"required"`
	Difficulty Difficulty `json:"difficulty" db:"difficulty" validate:"required,oneof=Easy Intermediate Hard"`
	Questions  Questions  `json:"questions" db:"questions" validate:"required,min=1,dive"`
}

type GenerateRequest struct {
	Title        string `json:"title" validate:"required"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=Easy Intermediate Hard"`
	NumQuestions int    `json:"numQuestions" validate:"gt=0"`
}

type SaveResponse struct {
	QuizID string `json:"quizId"`
}
