package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/DanRulev/quizmeon/internal/apiclient"
	"github.com/DanRulev/quizmeon/internal/cli"
	"github.com/DanRulev/quizmeon/internal/models"
	"github.com/DanRulev/quizmeon/internal/session"
	"github.com/DanRulev/quizmeon/internal/storage/cache"
	"github.com/DanRulev/quizmeon/internal/storage/local"

	"go.uber.org/zap"
)

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "quizmeon.json"
	}
	return filepath.Join(dir, "quizmeon", "storage.json")
}

// openStorage keeps state in memory for "memory", otherwise in the file at
// path.
func openStorage(path string, log *zap.Logger) (session.Storage, error) {
	if path == "memory" {
		return cache.NewCache(), nil
	}
	return local.Open(path, log)
}

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "quiz service base URL")
	origin := flag.String("origin", "http://localhost:3000", "origin used in shared quiz links")
	storagePath := flag.String("storage", defaultStoragePath(), "local storage file, or \"memory\" to keep nothing between runs")
	title := flag.String("title", "", "generate a new quiz on this topic")
	difficulty := flag.String("difficulty", string(models.DifficultyEasy), "Easy, Intermediate or Hard")
	count := flag.Int("n", 5, "number of questions")
	quizID := flag.String("quiz", "", "take a shared quiz by id")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	var logger *zap.Logger
	if *debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	storage, err := openStorage(*storagePath, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := apiclient.NewClient(*server, &http.Client{Timeout: 30 * time.Second})
	app := cli.NewApp(api, storage, cli.WriterClipboard{Out: os.Stdout}, os.Stdin, os.Stdout, logger)

	if d, ok := models.ParseDifficulty(*difficulty); ok {
		*difficulty = string(d)
	}

	err = app.Run(ctx, cli.Options{
		Request: models.GenerateRequest{
			Title:        *title,
			Difficulty:   *difficulty,
			NumQuestions: *count,
		},
		QuizID: *quizID,
		Origin: *origin,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
