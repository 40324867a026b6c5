package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/services/ranking"
	"github.com/AntonioJCosta/histpick/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(bootstrap Bootstrap, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the history in one of the picker views.",
		Long: `Prints the ranked, favorites or raw view without opening the picker.
--counts adds how often each command was run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, bootstrap, *opts)
		},
	}

	cmd.Flags().IntP("limit", "n", 0, "Maximum number of commands to print (0 prints all).")
	cmd.Flags().Bool("counts", false, "Show how many times each command appears in the history.")
	cmd.Flags().Bool("plain", false, "Print one command per line, without a table.")

	return cmd
}

type listCommandFlags struct {
	limit  int
	counts bool
	plain  bool
}

func parseListCommandFlags(cmd *cobra.Command) listCommandFlags {
	limit, _ := cmd.Flags().GetInt("limit")
	counts, _ := cmd.Flags().GetBool("counts")
	plain, _ := cmd.Flags().GetBool("plain")
	if limit < 0 {
		limit = 0
	}
	return listCommandFlags{limit: limit, counts: counts, plain: plain}
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, bootstrap Bootstrap, opts Options) error {
	flags := parseListCommandFlags(cmd)

	app, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer app.release()

	view, err := history.ParseView(app.Settings.View)
	if err != nil {
		return err
	}
	commands := app.Store.Get(view)
	if flags.limit > 0 && len(commands) > flags.limit {
		commands = commands[:flags.limit]
	}

	out := cmd.OutOrStdout()
	if flags.plain {
		for _, c := range commands {
			fmt.Fprintln(out, c)
		}
		return nil
	}

	if len(commands) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No commands in the %s view.", view)))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", app.Source)))
		return nil
	}

	counts := map[string]int{}
	if flags.counts {
		for _, f := range ranking.Frequencies(app.Store.Get(history.ViewRaw)) {
			counts[f.Command] = f.Count
		}
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("History (%s view):", view)))

	header := []string{"#", "Command", "Favorite"}
	if flags.counts {
		header = append(header, "Count")
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for i, c := range commands {
		favorite := ""
		if app.Store.IsFavorite(c) {
			favorite = "*"
		}
		row := []string{strconv.Itoa(i + 1), c, favorite}
		if flags.counts {
			row = append(row, strconv.Itoa(counts[c]))
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", app.Source)))
	return nil
}
