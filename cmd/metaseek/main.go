package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"metaseek/internal/api"
	"metaseek/internal/config"
	"metaseek/internal/logging"
	"metaseek/internal/ui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		apiURL     string
		logFile    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "metaseek [link]",
		Short: "Terminal client for the metaseek meta-search service",
		Long: `metaseek is an interactive terminal client for a meta-search backend.

Search as you type, filter by date, region and language, and share any
session as a link: the query string shown in the footer restores the
exact same view when passed back as the [link] argument.`,
		Example: `  metaseek
  metaseek "search=go+generics&page=2"
  metaseek --api-url http://localhost:3000`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawLink := ""
			if len(args) == 1 {
				rawLink = strings.TrimPrefix(args[0], "?")
			}
			return run(configPath, apiURL, logFile, debug, rawLink)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: config.toml in the user config dir)")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config file and METASEEK_API_URL)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "log file path")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

func run(configPath, apiURL, logFile string, debug bool, rawLink string) error {
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	logger := logging.New(logPath, cfg.Debug)
	defer func() { _ = logger.Sync() }()

	client := api.NewClient(cfg.APIURL, logger.Named("api"))
	model := ui.NewModel(rawLink, cfg, client, logger.Named("ui"))

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(program)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sig:
			program.Quit()
		case <-ctx.Done():
		}
	}()

	go func() {
		err := config.Watch(ctx, configPath, logger.Named("config"), func(fresh *config.Config) {
			program.Send(ui.ConfigReloadedMsg{Config: fresh})
		})
		if err != nil && ctx.Err() == nil {
			logger.Warn("config watcher stopped", zap.Error(err))
		}
	}()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("api_url", cfg.APIURL))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
