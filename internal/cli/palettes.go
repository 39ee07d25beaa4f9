package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletto/internal/colour"
	"github.com/jmylchreest/paletto/internal/palette"
	"github.com/jmylchreest/paletto/internal/store"
)

func newPalettesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Manage saved palettes",
		Long: `Manage saved palettes. A palette holds between 1 and 12 colours and is
listed newest first.`,
	}
	cmd.AddCommand(newPalettesListCmd(a))
	cmd.AddCommand(newPalettesShowCmd(a))
	cmd.AddCommand(newPalettesSaveCmd(a))
	cmd.AddCommand(newPalettesHarmonyCmd(a))
	cmd.AddCommand(newPalettesRandomCmd(a))
	cmd.AddCommand(newPalettesUpdateCmd(a))
	cmd.AddCommand(newPalettesRmCmd(a))
	return cmd
}

func newPalettesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved palettes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			palettes := st.Palettes()
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, palettes)
			}
			if len(palettes) == 0 {
				fmt.Fprintln(out, "No saved palettes.")
				return nil
			}

			p := a.previewer(out)
			table := NewTable([]string{"ID", "NAME", "TYPE", "COLOURS", "SAVED"})
			table.SetColumnMaxWidth(1, 32)
			for _, pal := range palettes {
				cell := strings.Join(pal.Colours, " ")
				if p != nil {
					cell = p.Strip(pal.Colours, 2)
				}
				table.AddRow([]string{pal.ID, pal.Name, string(pal.Kind), cell, formatMillis(pal.CreatedAt)})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
}

func newPalettesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			pal, err := st.Palette(args[0])
			if err != nil {
				return err
			}
			return printPalette(a, cmd, pal)
		},
	}
}

func newPalettesSaveCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "save <name> <colour>...",
		Short: "Save a palette from a list of colours",
		Long: `Save a palette from 1 to 12 colours.

Examples:
  paletto palettes save "Sunset" "#ff7e5f" "#feb47b" "#86a8e7"
  paletto palettes save "Primaries" red lime blue --type custom`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := palette.ParseKind(kind)
			if err != nil {
				return err
			}
			d, err := palette.FromColours(args[0], args[1:])
			if err != nil {
				return err
			}
			return savePalette(a, cmd, d, k)
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(palette.KindCustom), "palette type (custom, harmony)")
	return cmd
}

func newPalettesHarmonyCmd(a *app) *cobra.Command {
	var (
		schemeName string
		name       string
	)
	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Save a harmony as a palette",
		Long: `Generate a harmony from a base colour and save it as a palette. The name
defaults to "<scheme> <colour>".

Examples:
  paletto palettes harmony "#336699" --scheme triadic
  paletto palettes harmony coral --scheme analogous --name "Coral reef"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := colour.ParseHarmonyScheme(schemeName)
			if err != nil {
				return err
			}
			d, err := palette.FromHarmony(args[0], scheme)
			if err != nil {
				return err
			}
			if name != "" {
				d.Name = name
			}
			return savePalette(a, cmd, d, palette.KindHarmony)
		},
	}
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", colour.Complementary.String(), "harmony scheme ("+schemeList()+")")
	cmd.Flags().StringVarP(&name, "name", "n", "", "palette name")
	return cmd
}

func newPalettesRandomCmd(a *app) *cobra.Command {
	var (
		name string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random palette",
		Long: `Generate a palette of 3 to 12 random colours. The palette is printed, and
saved when --name is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rand.NewPCG(rand.Uint64(), rand.Uint64())
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
			}
			d := palette.NewDraft()
			d.Randomise(rand.New(src))
			if name == "" {
				return printColours(a, cmd, d.Colours)
			}
			d.Name = name
			return savePalette(a, cmd, d, palette.KindCustom)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "save the palette under this name")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible output")
	return cmd
}

func newPalettesUpdateCmd(a *app) *cobra.Command {
	var (
		name    string
		sets    []string
		adds    []string
		removes []int
		moves   []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a saved palette",
		Long: `Edit a saved palette. Positions are zero-based. Edits apply in this order:
--set, --add, --remove, --move; each flag may be repeated and repeats apply
in the order given. The palette keeps its ID, type and creation time.

Examples:
  paletto palettes update 1b9d... --name "Dusk"
  paletto palettes update 1b9d... --set 0=#ff0000 --add teal
  paletto palettes update 1b9d... --remove 2 --move 0:3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			pal, err := st.Palette(args[0])
			if err != nil {
				return err
			}

			d := &palette.Draft{Name: pal.Name, Colours: pal.Colours}
			if cmd.Flags().Changed("name") {
				d.Name = name
			}
			if err := applyEdits(d, sets, adds, removes, moves); err != nil {
				return err
			}

			updated, err := st.UpdatePalette(pal.ID, d.Name, d.Colours)
			if err != nil {
				return fmt.Errorf("failed to update palette: %w", err)
			}
			return printPalette(a, cmd, updated)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "new palette name")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "replace a colour (index=colour)")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "append a colour")
	cmd.Flags().IntSliceVar(&removes, "remove", nil, "remove the colour at index")
	cmd.Flags().StringArrayVar(&moves, "move", nil, "move a colour (from:to)")
	return cmd
}

// applyEdits applies update flags to d.
func applyEdits(d *palette.Draft, sets, adds []string, removes []int, moves []string) error {
	for _, s := range sets {
		idx, c, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q (want index=colour)", s)
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return fmt.Errorf("invalid --set index %q: %w", idx, err)
		}
		if err := d.Update(i, c); err != nil {
			return err
		}
	}
	for _, c := range adds {
		if err := d.Add(c); err != nil {
			return err
		}
	}
	for _, i := range removes {
		if err := d.Remove(i); err != nil {
			return err
		}
	}
	for _, m := range moves {
		from, to, ok := strings.Cut(m, ":")
		if !ok {
			return fmt.Errorf("invalid --move %q (want from:to)", m)
		}
		f, err := strconv.Atoi(from)
		if err != nil {
			return fmt.Errorf("invalid --move source %q: %w", from, err)
		}
		t, err := strconv.Atoi(to)
		if err != nil {
			return fmt.Errorf("invalid --move target %q: %w", to, err)
		}
		if err := d.Move(f, t); err != nil {
			return err
		}
	}
	return nil
}

func newPalettesRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a saved palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if err := st.RemovePalette(args[0]); err != nil {
				return err
			}
			a.status(cmd, "Removed palette %s", args[0])
			return nil
		},
	}
}

func savePalette(a *app, cmd *cobra.Command, d *palette.Draft, kind palette.Kind) error {
	if err := d.Validate(); err != nil {
		return err
	}
	st, err := a.openStore()
	if err != nil {
		return err
	}
	pal, err := st.SavePalette(d.Name, d.Colours, kind)
	if err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}
	return printPalette(a, cmd, pal)
}

func printPalette(a *app, cmd *cobra.Command, pal store.Palette) error {
	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, pal)
	}
	fmt.Fprintf(out, "%s  %s (%s, %d colours)\n", pal.ID, pal.Name, pal.Kind, len(pal.Colours))
	return printColourRows(a, cmd, pal.Colours)
}

func printColours(a *app, cmd *cobra.Command, colours []string) error {
	if a.jsonOutput() {
		data, err := colour.HexListJSON(colours)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return printColourRows(a, cmd, colours)
}

func printColourRows(a *app, cmd *cobra.Command, colours []string) error {
	out := cmd.OutOrStdout()
	p := a.previewer(out)
	for i, c := range colours {
		if p != nil {
			fmt.Fprintf(out, "  %2d  %s %s\n", i, swatch(p, c), c)
			continue
		}
		fmt.Fprintf(out, "  %2d  %s\n", i, c)
	}
	return nil
}
