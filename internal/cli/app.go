package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/DanRulev/quizmeon/internal/session"
	"go.uber.org/zap"
)

const maxAttempts = 3

type APII interface {
	session.GeneratorI
	session.FetcherI
	session.SaverI
}

type Options struct {
	Request models.GenerateRequest
	QuizID  string
	Origin  string
}

type App struct {
	api       APII
	storage   session.Storage
	clipboard session.ClipboardI
	log       *zap.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(api APII, storage session.Storage, clipboard session.ClipboardI, in io.Reader, out io.Writer, log *zap.Logger) *App {
	return &App{
		api:       api,
		storage:   storage,
		clipboard: clipboard,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run takes a quiz and then stays on the score page until the user quits.
// An explicit quiz id or title starts over; otherwise a cached quiz is
// resumed, and with nothing cached the user is asked what to generate.
func (a *App) Run(ctx context.Context, opts Options) error {
	var source session.Source

	switch {
	case strings.TrimSpace(opts.QuizID) != "":
		if err := session.Home(a.storage); err != nil {
			return err
		}
		source = session.SharedSource(a.api, strings.TrimSpace(opts.QuizID))
	case strings.TrimSpace(opts.Request.Title) != "":
		if err := session.Home(a.storage); err != nil {
			return err
		}
		source = session.GenerateSource(a.api, opts.Request)
	default:
		source = session.SourceFunc(func(ctx context.Context) (models.Quiz, error) {
			req, err := a.askRequest()
			if err != nil {
				return models.Quiz{}, err
			}
			return a.api.Generate(ctx, req)
		})
	}

	for {
		if err := a.take(ctx, source); err != nil {
			return err
		}

		action, err := a.scorePage(ctx, opts.Origin)
		if err != nil {
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionRetry:
			if err := session.Retry(a.storage); err != nil {
				return err
			}
		case actionHome:
			if err := session.Home(a.storage); err != nil {
				return err
			}
			req, err := a.askRequest()
			if err != nil {
				return err
			}
			source = session.GenerateSource(a.api, req)
		}
	}
}

func (a *App) take(ctx context.Context, source session.Source) error {
	taker := session.NewTaker(a.storage, source, a.log)

	fmt.Fprintln(a.out, "Loading Quiz...")
	if err := taker.Load(ctx); err != nil {
		return err
	}

	quiz := taker.Quiz()
	fmt.Fprintf(a.out, "\n%s (%s)\n", quiz.Title, quiz.Difficulty)

	answered := taker.Answers()
	for idx, question := range quiz.Questions {
		if _, ok := answered[idx]; ok {
			continue
		}

		printQuestion(a.out, idx+1, question)

		choice, ok := a.readChoice(len(question.Options))
		if !ok {
			fmt.Fprintln(a.out, "Skipping.")
			continue
		}
		if err := taker.Answer(idx, question.Options[choice]); err != nil {
			return err
		}
	}

	if _, err := taker.Submit(); err != nil {
		return err
	}
	return nil
}

type action int

const (
	actionQuit action = iota
	actionRetry
	actionHome
)

func (a *App) scorePage(ctx context.Context, origin string) (action, error) {
	for {
		result := session.LoadResult(a.storage, a.log)
		printResult(a.out, result)

		fmt.Fprint(a.out, "\n[r] Retake Quiz  [s] Share the quiz  [h] Generate New Quiz  [q] Quit\n> ")
		line, err := a.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return actionQuit, nil
			}
			return actionQuit, err
		}

		switch strings.ToLower(line) {
		case "r":
			return actionRetry, nil
		case "h":
			return actionHome, nil
		case "q":
			return actionQuit, nil
		case "s":
			if _, err := result.Share(ctx, a.api, a.clipboard, origin); err != nil {
				a.log.Error("failed to share quiz", zap.Error(err))
				fmt.Fprintln(a.out, "Failed to share quiz. Please try again.")
				continue
			}
			fmt.Fprintln(a.out, "Quiz saved & link copied to clipboard! Share it with your friends.")
		default:
			fmt.Fprintln(a.out, "Unknown command.")
		}
	}
}

func (a *App) askRequest() (models.GenerateRequest, error) {
	var req models.GenerateRequest

	fmt.Fprint(a.out, "Quiz me on: ")
	title, err := a.readLine()
	if err != nil {
		return req, err
	}

	fmt.Fprint(a.out, "Difficulty (Easy, Intermediate, Hard): ")
	difficulty, err := a.readLine()
	if err != nil {
		return req, err
	}
	if d, ok := models.ParseDifficulty(difficulty); ok {
		difficulty = string(d)
	}

	fmt.Fprint(a.out, "Number of questions: ")
	raw, err := a.readLine()
	if err != nil {
		return req, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return req, fmt.Errorf("invalid number of questions %q", raw)
	}

	return models.GenerateRequest{Title: title, Difficulty: difficulty, NumQuestions: n}, nil
}

func (a *App) readLine() (string, error) {
	line, err := a.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) readChoice(optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := a.readLine()
		if err != nil {
			return -1, false
		}

		line = strings.ToUpper(line)
		if len(line) == 1 && line[0] >= 'A' && line[0] <= maxLetter {
			return int(line[0] - 'A'), true
		}

		if attempt < maxAttempts {
			fmt.Fprintf(a.out, "Invalid input. Please enter a letter A-%c.\n", maxLetter)
		}
	}

	return -1, false
}

func printQuestion(out io.Writer, number int, question models.Question) {
	fmt.Fprintf(out, "\nQ%d: %s\n\n", number, question.Question)
	for i, option := range question.Options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+i, option)
	}
	fmt.Fprintln(out)
}

func printResult(out io.Writer, result session.Result) {
	fmt.Fprintf(out, "\n%s\n", result.Title())

	if !result.Found() {
		fmt.Fprintln(out, session.NoResultMessage)
		return
	}

	fmt.Fprintf(out, "Your Score: %d\n", result.Score)
	for _, item := range result.Review() {
		mark := "x"
		if item.IsCorrect() {
			mark = "v"
		}
		selected := item.Selected
		if !item.Answered {
			selected = "-"
		}
		fmt.Fprintf(out, "  [%s] Q%d %s: %s (correct: %s)\n", mark, item.Index+1, item.Question, selected, item.Correct)
	}
}

// WriterClipboard prints the copied text instead of touching a system
// clipboard.
type WriterClipboard struct {
	Out io.Writer
}

func (c WriterClipboard) Copy(text string) error {
	_, err := fmt.Fprintf(c.Out, "\n%s\n", text)
	return err
}
