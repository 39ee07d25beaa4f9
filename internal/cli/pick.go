package cli

import (
	"fmt"
	"math/rand/v2"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletto/internal/colour"
	"github.com/jmylchreest/paletto/internal/image"
	"github.com/jmylchreest/paletto/internal/palette"
)

func newPickCmd(a *app) *cobra.Command {
	var (
		save  bool
		name  string
		count int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "pick <image>",
		Short: "Pick colours from an image",
		Long: `Pick the average colour of an image file or HTTP(S) URL, or with --colours
its dominant colours found by k-means clustering. Supported formats are
JPEG, PNG, GIF and WebP. Mostly transparent pixels are ignored.

With --save a single colour is added to the saved colours; several colours
are saved as a palette.

Examples:
  paletto pick wallpaper.jpg
  paletto pick wallpaper.jpg --colours 6 --save --name "Wallpaper"
  paletto pick https://example.com/logo.png --save --name logo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > palette.MaxColours {
				return fmt.Errorf("--colours must be between 1 and %d, got %d", palette.MaxColours, count)
			}
			if !image.IsURL(args[0]) && !image.IsImageFile(args[0]) {
				return fmt.Errorf("unsupported image file: %s (supported: %s)",
					args[0], strings.Join(image.SupportedImageExtensions(), ", "))
			}
			img, err := image.NewSmartLoader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if count == 1 {
				picked := image.AverageColour(img)
				a.logger.Debug("picked colour", "source", args[0], "hex", picked.Hex(), "bounds", img.Bounds())
				return outputPicked(a, cmd, picked, save, name)
			}

			src := rand.NewPCG(rand.Uint64(), rand.Uint64())
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
			}
			clusters, err := image.DominantColours(img, count, rand.New(src))
			if err != nil {
				return fmt.Errorf("failed to extract colours: %w", err)
			}
			hexes := make([]string, len(clusters))
			for i, c := range clusters {
				hexes[i] = c.Colour.Hex()
			}
			a.logger.Debug("extracted colours", "source", args[0], "requested", count, "found", len(hexes))

			if !save {
				if a.jsonOutput() {
					return writeJSON(cmd.OutOrStdout(), clusters)
				}
				return printColourRows(a, cmd, hexes)
			}
			if name == "" {
				name = strings.TrimSuffix(path.Base(args[0]), path.Ext(args[0]))
			}
			return savePalette(a, cmd, &palette.Draft{Name: name, Colours: hexes}, palette.KindCustom)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "save the picked colour, or palette with --colours")
	cmd.Flags().StringVarP(&name, "name", "n", "", "label for the saved colour or palette")
	cmd.Flags().IntVarP(&count, "colours", "c", 1, "number of dominant colours to extract")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible clustering")
	return cmd
}

func outputPicked(a *app, cmd *cobra.Command, picked colour.RGB, save bool, name string) error {
	if save {
		st, err := a.openStore()
		if err != nil {
			return err
		}
		saved, err := st.SaveColour(picked.Hex(), name)
		if err != nil {
			return fmt.Errorf("failed to save colour: %w", err)
		}
		a.status(cmd, "Saved %s as %s", saved.Hex, saved.ID)
	}

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		info, err := colour.Describe(picked.Hex())
		if err != nil {
			return err
		}
		return writeJSON(out, info)
	}
	if p := a.previewer(out); p != nil {
		fmt.Fprintf(out, "%s ", p.Block(picked, 4))
	}
	fmt.Fprintln(out, picked.Hex())
	return nil
}
