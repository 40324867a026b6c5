package cli

import (
	"fmt"

	"github.com/AntonioJCosta/histpick/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewFavoriteCommand creates the 'favorite' subcommand.
func NewFavoriteCommand(bootstrap Bootstrap, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <command>",
		Short: "Add a command to the favorites, or remove it if it is already there.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoriteCmd(cmd, args, bootstrap, *opts)
		},
	}
}

func runFavoriteCmd(cmd *cobra.Command, args []string, bootstrap Bootstrap, opts Options) error {
	command, err := commandArg(args)
	if err != nil {
		return err
	}
	app, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer app.release()

	added, err := app.Store.ToggleFavorite(command)
	if err != nil {
		return fmt.Errorf("could not update favorites: %w", err)
	}
	if added {
		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor("Added to favorites: ")+ui.FavoriteColor(command))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Removed from favorites: ")+ui.CommandColor(command))
	}
	return nil
}
