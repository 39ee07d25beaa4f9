package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletto/internal/colour"
)

// harmonyResult is the JSON shape of one generated scheme.
type harmonyResult struct {
	Base    string   `json:"base"`
	Scheme  string   `json:"scheme"`
	Colours []string `json:"colors"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <colour>",
		Short: "Show a colour in every format",
		Long: `Show a colour as HEX, RGB, CMYK and HSL, along with its contrast against
white, the readable text colour for it and its translucent swatches.

Examples:
  paletto info "#3b82f6"
  paletto info rebeccapurple --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := colour.Describe(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, info)
			}

			if p := a.previewer(out); p != nil {
				fmt.Fprintln(out, p.Label(info.RGB, info.Hex, 24))
				fmt.Fprintln(out)
			}

			table := NewTable([]string{"FORMAT", "VALUE"})
			for _, f := range info.Formats() {
				table.AddRow([]string{f.Label, f.Value})
			}
			fmt.Fprint(out, table.Render())
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Contrast vs white: %.1f:1 (use %s text)\n", info.Contrast, info.TextColour)

			swatches := make([]string, len(info.Swatches))
			for i, s := range info.Swatches {
				swatches[i] = fmt.Sprintf("%d%% %s", s.Percent, s.CSS)
			}
			fmt.Fprintf(out, "Swatches:\n  %s\n", strings.Join(swatches, "\n  "))
			return nil
		},
	}
}

func newCMYKCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmyk <r> <g> <b>",
		Short: "Convert RGB channels to CMYK",
		Long: `Convert red, green and blue channel values (0-255) to CMYK percentages.

Examples:
  paletto cmyk 255 0 0
  paletto cmyk 128 64 32 --format json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ch [3]int
			for i, name := range []string{"red", "green", "blue"} {
				v, err := parseChannel(args[i])
				if err != nil {
					return fmt.Errorf("invalid %s channel: %w", name, err)
				}
				ch[i] = v
			}
			cmyk := colour.RGBToCMYK(ch[0], ch[1], ch[2])
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, cmyk)
			}
			rgb := colour.RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}
			if p := a.previewer(out); p != nil {
				fmt.Fprintf(out, "%s ", p.Block(rgb, 4))
			}
			fmt.Fprintf(out, "%s -> %s\n", rgb, cmyk)
			return nil
		},
	}
}

// parseChannel parses a 0-255 colour channel.
func parseChannel(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%d is outside 0-255", v)
	}
	return v, nil
}

func newHarmonyCmd(a *app) *cobra.Command {
	var (
		schemeName string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Generate a colour harmony",
		Long: `Generate a harmony from a base colour by rotating its hue while keeping
saturation and lightness. The base colour is included at its offset-0 position.

Schemes:
  complementary        base, +180
  analogous            -30, base, +30
  triadic              base, +120, +240
  tetradic             base, +90, +180, +270
  split-complementary  base, +150, +210

Examples:
  paletto harmony "#ff0000"
  paletto harmony teal --scheme triadic
  paletto harmony "#336699" --all --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes := colour.Schemes()
			if !all {
				scheme, err := colour.ParseHarmonyScheme(schemeName)
				if err != nil {
					return err
				}
				schemes = []colour.HarmonyScheme{scheme}
			}

			results := make([]harmonyResult, 0, len(schemes))
			for _, scheme := range schemes {
				colours, err := colour.GenerateHarmony(args[0], scheme)
				if err != nil {
					return err
				}
				results = append(results, harmonyResult{Base: args[0], Scheme: scheme.String(), Colours: colours})
			}
			a.logger.Debug("generated harmonies", "base", args[0], "schemes", len(results))

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				if len(results) == 1 {
					return writeJSON(out, results[0])
				}
				return writeJSON(out, results)
			}

			p := a.previewer(out)
			table := NewTable([]string{"SCHEME", "COLOURS"})
			for _, r := range results {
				cell := strings.Join(r.Colours, " ")
				if p != nil {
					cell = p.Strip(r.Colours, 4) + " " + cell
				}
				table.AddRow([]string{r.Scheme, cell})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemeName, "scheme", "s", colour.Complementary.String(), "harmony scheme ("+schemeList()+")")
	cmd.Flags().BoolVar(&all, "all", false, "generate every scheme")
	cmd.MarkFlagsMutuallyExclusive("scheme", "all")
	return cmd
}

func schemeList() string {
	names := make([]string, 0, len(colour.Schemes()))
	for _, s := range colour.Schemes() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
