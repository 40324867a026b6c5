package cli

import (
	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/AntonioJCosta/histpick/internal/handlers/tui"
	"github.com/rs/zerolog"
)

/*
Options carries the global flags. Empty strings and nil pointers mean the flag
was not given and the settings file decides.
*/
type Options struct {
	ConfigPath    string
	HistoryFile   string
	View          string
	Injection     string
	RegexMode     *bool
	CaseSensitive *bool
}

// Apply overrides s with every flag that was given.
func (o Options) Apply(s settings.Settings) settings.Settings {
	if o.HistoryFile != "" {
		s.HistoryFile = o.HistoryFile
	}
	if o.View != "" {
		s.View = o.View
	}
	if o.Injection != "" {
		s.Injection = o.Injection
	}
	if o.RegexMode != nil {
		s.RegexMode = *o.RegexMode
	}
	if o.CaseSensitive != nil {
		s.CaseSensitive = *o.CaseSensitive
	}
	return s
}

// App is everything a command needs, built from the settings once flags are parsed.
type App struct {
	Settings settings.Settings
	Store    ports.HistoryStore
	Injector ports.CommandInjector
	Screen   tui.Screen
	Theme    tui.Theme
	Logger   zerolog.Logger
	Source   string
	Close    func() error
}

func (a *App) release() {
	if a.Close != nil {
		if err := a.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("release failed")
		}
	}
}

// Bootstrap builds the App for one invocation.
type Bootstrap func(opts Options) (*App, error)
