package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletto/internal/colour"
	"github.com/jmylchreest/paletto/internal/store"
)

const timeLayout = "2006-01-02 15:04"

func newColoursCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "colours",
		Aliases: []string{"colors"},
		Short:   "Manage saved colours",
	}
	cmd.AddCommand(newColoursListCmd(a))
	cmd.AddCommand(newColoursSaveCmd(a))
	cmd.AddCommand(newColoursRmCmd(a))
	return cmd
}

func newColoursListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved colours in the order they were saved",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			colours := st.Colours()
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, colours)
			}
			if len(colours) == 0 {
				fmt.Fprintln(out, "No saved colours.")
				return nil
			}

			p := a.previewer(out)
			headers := []string{"ID", "HEX", "NAME", "SAVED"}
			if p != nil {
				headers = append([]string{""}, headers...)
			}
			table := NewTable(headers)
			for _, c := range colours {
				row := []string{c.ID, c.Hex, c.Name, formatMillis(c.CreatedAt)}
				if p != nil {
					row = append([]string{swatch(p, c.Hex)}, row...)
				}
				table.AddRow(row)
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
}

func newColoursSaveCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "save <colour>",
		Short: "Save a colour",
		Long: `Save a colour to the end of the saved colour list.

Examples:
  paletto colours save "#3b82f6" --name "brand blue"
  paletto colours save tomato`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			saved, err := st.SaveColour(args[0], name)
			if err != nil {
				return fmt.Errorf("failed to save colour: %w", err)
			}
			return printSavedColour(a, cmd, saved)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "optional label for the colour")
	return cmd
}

func printSavedColour(a *app, cmd *cobra.Command, c store.SavedColour) error {
	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, c)
	}
	fmt.Fprintf(out, "Saved %s as %s\n", c.Hex, c.ID)
	return nil
}

func newColoursRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a saved colour",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if err := st.RemoveColour(args[0]); err != nil {
				return err
			}
			a.status(cmd, "Removed colour %s", args[0])
			return nil
		},
	}
}

// swatch renders a small block for hex, or an empty cell if hex is invalid.
func swatch(p *colour.Previewer, hex string) string {
	c, err := colour.ParseColour(hex)
	if err != nil {
		return ""
	}
	return p.Block(colour.FromColorful(c), 4)
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format(timeLayout)
}
