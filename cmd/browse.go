package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/spf13/cobra"

	"ghbrowse/internal/config"
	"ghbrowse/internal/github"
	"ghbrowse/internal/log"
	"ghbrowse/internal/ui"
	"ghbrowse/internal/watch"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive profile browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse() error {
	cfg, err := loadConfig()
	if err != nil {
		log.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupLogging(cfg)
	log.Debug("configuration loaded", slog.String("path", cfg.Path))

	client, err := github.NewClient(github.ClientOptions{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.GetToken(),
		Timeout: cfg.RequestTimeout(),
		Logger:  log.Logger(),
	})
	if err != nil {
		return err
	}

	program := ui.NewProgram(ui.NewModel(client, cfg), ui.ProgramOptions{Plain: plain})

	// Ctrl+C is handled inside the event loop; SIGTERM arrives from outside
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		program.Quit()
	}()

	// Reload settings live when the config file changes on disk
	if cfg.Path != "" {
		watcher, err := watch.NewConfigWatcher(cfg.Path, func() {
			reloaded, err := config.LoadFile(cfg.Path)
			if err != nil {
				log.Warn("ignoring config change", slog.String("error", err.Error()))
				return
			}
			program.ReloadConfig(reloaded)
		})
		if err != nil {
			log.Warn("config watching disabled", slog.String("error", err.Error()))
		} else {
			log.Info("watching config file", slog.String("path", cfg.Path))
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			defer watcher.Close()
			go watcher.Start(ctx)
		}
	}

	return program.Run()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load(".")
}

func setupLogging(cfg *config.Config) {
	levelStr := cfg.LogLevel
	if logLevel != "" {
		levelStr = logLevel
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		log.Error("invalid log level", slog.String("level", levelStr))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The TUI owns the terminal; route logs away from it unless debugging
	if !log.IsDebugEnabled() {
		log.SetOutput(io.Discard)
	}
}
