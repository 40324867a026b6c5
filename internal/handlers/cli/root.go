package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/services/session"
	"github.com/AntonioJCosta/histpick/internal/handlers/tui"
	"github.com/AntonioJCosta/histpick/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the histpick command. Without a subcommand it opens
// the interactive picker, pre-filled with any arguments as the query.
func NewRootCommand(version string, bootstrap Bootstrap) *cobra.Command {
	if bootstrap == nil {
		panic("bootstrap cannot be nil")
	}
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "histpick [query]",
		Short: "histpick is an interactive picker over your shell history.",
		Long: `histpick shows your shell history ranked by frequency and recency,
filters it as you type, and hands the selected command back to your shell.

Keys: C-e regex, C-t case, C-/ view, C-f favorite, DEL remove,
RET run, TAB insert, ESC quit.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readOptionFlags(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, args, bootstrap, *opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Settings file (default $HOME/.histpick/config.yaml).")
	flags.String("history-file", "", "History file to read instead of the discovered one.")
	flags.String("view", "", "Initial view: ranked, favorites or raw.")
	flags.StringP("inject", "i", "", "How to return the command: auto, tiocsti, clipboard or stdout.")
	flags.BoolP("regex", "e", false, "Start in regex mode.")
	flags.BoolP("case-sensitive", "s", false, "Start with case-sensitive matching.")

	rootCmd.AddCommand(NewListCommand(bootstrap, opts))
	rootCmd.AddCommand(NewFavoriteCommand(bootstrap, opts))
	rootCmd.AddCommand(NewDeleteCommand(bootstrap, opts))

	return rootCmd
}

// readOptionFlags copies the flags that were actually given into opts.
func readOptionFlags(cmd *cobra.Command, opts *Options) error {
	flags := cmd.Flags()
	opts.HistoryFile, _ = flags.GetString("history-file")
	opts.Injection, _ = flags.GetString("inject")

	if view, _ := flags.GetString("view"); view != "" {
		if _, err := history.ParseView(view); err != nil {
			return err
		}
		opts.View = view
	}
	if flags.Changed("regex") {
		regex, _ := flags.GetBool("regex")
		opts.RegexMode = &regex
	}
	if flags.Changed("case-sensitive") {
		caseSensitive, _ := flags.GetBool("case-sensitive")
		opts.CaseSensitive = &caseSensitive
	}
	return nil
}

func runPicker(cmd *cobra.Command, args []string, bootstrap Bootstrap, opts Options) error {
	app, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer app.release()

	view, err := history.ParseView(app.Settings.View)
	if err != nil {
		return err
	}
	initial := session.State{
		View:          view,
		Query:         strings.Join(args, " "),
		RegexMode:     app.Settings.RegexMode,
		CaseSensitive: app.Settings.CaseSensitive,
	}
	controller := session.NewController(app.Store, app.Screen, initial, app.Logger)
	model := tui.NewModel(controller, app.Screen, app.Theme, app.Logger)

	result, err := tui.Run(model, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return deliver(app, result)
}

// deliver hands a picked command to the shell; a cancelled session or an
// empty list delivers nothing.
func deliver(app *App, result session.Result) error {
	if !result.Chosen {
		return nil
	}
	app.Logger.Info().Str("command", result.Command).Bool("run", result.Run).Msg("command picked")
	if err := app.Injector.Inject(result.Command, result.Run); err != nil {
		return fmt.Errorf("could not hand %q back to the shell: %w", result.Command, err)
	}
	return nil
}

// ReportError prints an error returned by the root command.
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.ErrorColor("Error: "+err.Error()))
}

// commandArg joins the positional arguments into one command. History and
// favorites files hold one command per line, so line breaks are refused.
func commandArg(args []string) (string, error) {
	cmd := strings.Join(args, " ")
	if strings.TrimSpace(cmd) == "" {
		return "", errors.New("a command is required")
	}
	if strings.ContainsAny(cmd, "\r\n") {
		return "", fmt.Errorf("command %q spans several lines", cmd)
	}
	return cmd, nil
}
