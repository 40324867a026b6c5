package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/histpick/internal/core/services/historystore"
	"github.com/AntonioJCosta/histpick/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the 'delete' subcommand.
func NewDeleteCommand(bootstrap Bootstrap, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <command>",
		Short: "Remove every occurrence of a command from the history and favorites.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteCmd(cmd, args, bootstrap, *opts)
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation.")
	return cmd
}

func runDeleteCmd(cmd *cobra.Command, args []string, bootstrap Bootstrap, opts Options) error {
	command, err := commandArg(args)
	if err != nil {
		return err
	}
	app, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer app.release()

	out := cmd.OutOrStdout()
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Fprint(out, ui.PromptColor(fmt.Sprintf("Do you want to delete all occurrences of %s? y/n ", command)))
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Fprintln(out, ui.InfoColor("Nothing deleted."))
			return nil
		}
	}

	if err := app.Store.DeleteAllOccurrences(command); err != nil {
		if errors.Is(err, historystore.ErrNotFound) {
			fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%q is not in the history or the favorites.", command)))
			return nil
		}
		return fmt.Errorf("could not delete %q: %w", command, err)
	}
	fmt.Fprintln(out, ui.SuccessColor("Deleted: ")+ui.CommandColor(command))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", app.Source)))
	return nil
}
