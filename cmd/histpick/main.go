package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/histpick/internal/adapters/settingsfile"
	"github.com/AntonioJCosta/histpick/internal/adapters/shellinject"
	"github.com/AntonioJCosta/histpick/internal/adapters/terminal"
	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/AntonioJCosta/histpick/internal/core/services/historystore"
	"github.com/AntonioJCosta/histpick/internal/handlers/cli"
	"github.com/AntonioJCosta/histpick/internal/handlers/tui"
	"github.com/AntonioJCosta/histpick/internal/logger"
	"github.com/AntonioJCosta/histpick/internal/repositories/history"
	"github.com/charmbracelet/lipgloss"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, bootstrap)
	if err := rootCmd.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap wires the adapters for one invocation once the flags are known.
func bootstrap(opts cli.Options) (*cli.App, error) {
	settingsProvider, err := settingsfile.NewYAMLProvider(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing settings provider: %w", err)
	}
	s, err := loadSettings(settingsProvider, opts)
	if err != nil {
		return nil, err
	}

	log, logFile, err := logger.New(logger.Config{Level: s.LogLevel, Output: s.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	historyRepo, err := history.NewFileRepository(s.HistoryFile, s.FavoritesFile, history.NewDefaultHistoryFileFinder(), logger.WithComponent(log, "repository"))
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("error initializing history repository: %w", err)
	}
	store, err := historystore.NewService(historyRepo)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	injector, err := shellinject.NewInjector(s.Injection, os.Stdout, os.Stderr, logger.WithComponent(log, "inject"))
	if err != nil {
		logFile.Close()
		return nil, err
	}

	// The picker draws on stderr so stdout only ever carries the picked command.
	theme := tui.DefaultTheme()
	theme.Renderer = lipgloss.NewRenderer(os.Stderr)

	log.Debug().Str("source", historyRepo.GetSourceIdentifier()).Str("view", s.View).Msg("histpick started")
	return &cli.App{
		Settings: s,
		Store:    store,
		Injector: injector,
		Screen:   terminal.NewGeometry(int(os.Stderr.Fd())),
		Theme:    theme,
		Logger:   logger.WithComponent(log, "session"),
		Source:   historyRepo.GetSourceIdentifier(),
		Close:    logFile.Close,
	}, nil
}

// loadSettings reads the settings file and lays the command line flags over it.
func loadSettings(provider ports.SettingsProvider, opts cli.Options) (settings.Settings, error) {
	s, err := provider.GetSettings()
	if err != nil {
		return settings.Settings{}, err
	}
	return opts.Apply(s), nil
}
