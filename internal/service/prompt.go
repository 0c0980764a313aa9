package service

import (
	"fmt"
	"strings"

	"github.com/DanRulev/quizmeon/internal/models"
)

var difficultyAudience = map[models.Difficulty]string{
	models.DifficultyEasy:         "someone with a basic understanding of the topic can answer them",
	models.DifficultyIntermediate: "someone with a good understanding of the topic can answer them",
	models.DifficultyHard:         "only someone with an expert understanding of the topic can answer them",
}

func BuildQuizPrompt(description string, difficulty models.Difficulty, numQuestions int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate a quiz with the description of '%s' with difficulty '%s' containing %d questions.\n",
		description, difficulty, numQuestions)
	sb.WriteString("Each question should have:\n")
	sb.WriteString("- A question statement\n")
	sb.WriteString("- Exactly 4 options (in an array)\n")
	sb.WriteString("- One correct answer (which must be exactly one of the options)\n\n")

	sb.WriteString("Return ONLY valid JSON formatted like this inside a single triple-backtick json block:\n")
	sb.WriteString("```json\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"title\": \"<title>\",\n")
	fmt.Fprintf(&sb, "  \"difficulty\": \"%s\",\n", difficulty)
	sb.WriteString("  \"questions\": [\n")
	sb.WriteString("    {\n")
	sb.WriteString("      \"question\": \"Sample Question?\",\n")
	sb.WriteString("      \"options\": [\"Option 1\", \"Option 2\", \"Option 3\", \"Option 4\"],\n")
	sb.WriteString("      \"correctAnswer\": \"Option 1\"\n")
	sb.WriteString("    }\n")
	sb.WriteString("  ]\n")
	sb.WriteString("}\n")
	sb.WriteString("```\n")
	sb.WriteString("Do not include any text before or after the JSON block.\n\n")

	sb.WriteString("Rules to follow while generating the quiz:\n")
	sb.WriteString("- Pick an appropriate title for the quiz based on the description.\n")
	sb.WriteString("- Questions must be based on the description.\n")
	fmt.Fprintf(&sb, "- Questions must be of %s difficulty: write them so that %s.\n",
		strings.ToLower(string(difficulty)), difficultyAudience[difficulty])
	fmt.Fprintf(&sb, "- Return exactly %d questions.\n", numQuestions)
	sb.WriteString("- Questions must be unique and may vary in type: find the incorrect or correct statement, odd one out, standard recall, or other types where applicable.\n")
	sb.WriteString("- Questions must be clear, concise and unambiguous, without spelling or grammatical errors.\n")
	sb.WriteString("- The correct answer must always be correct and must be copied verbatim from the options.\n")
	sb.WriteString("- The JSON must be valid.\n")

	return sb.String()
}
