// viewer is the terminal client for the tournament API: it loads the list
// once, lets the user filter it and join tournaments locally.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"

	"github.com/Dosada05/chess-tournaments/client"
	"github.com/Dosada05/chess-tournaments/services"
	"github.com/Dosada05/chess-tournaments/session"
	"github.com/Dosada05/chess-tournaments/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var apiURL string
	var timeout time.Duration
	var logOutput string

	flagSet := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api-url", "http://localhost:8080", "base URL of the tournament API")
	flagSet.DurationVar(&timeout, "timeout", 10*time.Second, "timeout for loading the tournament list")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	// TUI занимает терминал, поэтому логи пишем только в файл
	var logWriter io.Writer = io.Discard
	if logOutput != "" {
		f, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer f.Close()
		logWriter = f
	}
	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))

	api := client.New(apiURL, nil)

	var program *tea.Program
	notifier := services.NewNotifier(clockwork.NewRealClock(), services.NoticeTTL, func() {
		if program != nil {
			program.Send(ui.NoticeExpired{})
		}
	})

	sess := session.New(api, notifier, logger)
	defer sess.Close()

	program = tea.NewProgram(ui.NewModel(sess, ui.Options{LoadTimeout: timeout}), tea.WithAltScreen())
	logger.Info("viewer started", slog.String("api_url", apiURL))
	_, err := program.Run()
	return err
}
