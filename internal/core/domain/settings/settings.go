/*
Package settings defines the user-configurable options of a picker session.
*/
package settings

import "github.com/AntonioJCosta/histpick/internal/core/domain/history"

// Injection modes understood by the shell injection adapter.
const (
	InjectAuto      = "auto"
	InjectTIOCSTI   = "tiocsti"
	InjectClipboard = "clipboard"
	InjectStdout    = "stdout"
)

/*
Settings holds everything read from the settings file. Empty paths mean
"discover automatically".
*/
type Settings struct {
	HistoryFile   string `yaml:"history_file"`
	FavoritesFile string `yaml:"favorites_file"`
	View          string `yaml:"view"`
	RegexMode     bool   `yaml:"regex_mode"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Injection     string `yaml:"injection"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		View:      history.ViewRanked.String(),
		Injection: InjectAuto,
		LogLevel:  "disabled",
	}
}

// DataDirName is the directory under $HOME holding favorites, settings and logs.
const DataDirName = ".histpick"
