// Package cli provides the command-line interface for Paletto.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/paletto/internal/colour"
	"github.com/jmylchreest/paletto/internal/config"
	"github.com/jmylchreest/paletto/internal/security"
	"github.com/jmylchreest/paletto/internal/store"
	"github.com/jmylchreest/paletto/internal/version"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// app carries global flag values and the state built from them.
type app struct {
	configPath string
	storePath  string
	format     string
	preview    string
	verbose    bool
	quiet      bool

	cfg    config.Config
	logger hclog.Logger
	store  *store.Store
}

// NewRootCmd builds the paletto command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "paletto",
		Short: "A colour palette toolkit",
		Long: `Paletto inspects colours, generates colour harmonies and keeps a library of
saved colours and palettes.

Colours may be given as #rgb, #rrggbb (the # is optional) or a CSS colour
name such as "rebeccapurple". Saved colours and palettes live in a JSON store
that can be backed up, restored and served over HTTP.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/paletto/config.toml)")
	flags.StringVar(&a.storePath, "store", "", "store file (overrides config and "+config.EnvStore+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	a.format = formatText
	flags.Var(newChoice(&a.format, formatText, formatJSON), "format", "output format (text, json)")
	flags.StringVar(&a.preview, "preview", config.PreviewAuto, "colour swatches (auto, always, never)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newCMYKCmd(a))
	rootCmd.AddCommand(newHarmonyCmd(a))
	rootCmd.AddCommand(newColoursCmd(a))
	rootCmd.AddCommand(newPalettesCmd(a))
	rootCmd.AddCommand(newBackupCmd(a))
	rootCmd.AddCommand(newRestoreCmd(a))
	rootCmd.AddCommand(newPickCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, applies global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.storePath != "" {
		cfg.Store = a.storePath
	}
	if cmd.Flags().Changed("preview") {
		cfg.Display.Preview = a.preview
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level := cfg.Level()
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.cfg = cfg
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "paletto",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	a.logger.Debug("configuration loaded", "store", cfg.Store, "preview", cfg.Display.Preview)
	return nil
}

// choice is a string flag restricted to a fixed set of values.
type choice struct {
	target  *string
	allowed []string
}

var _ pflag.Value = (*choice)(nil)

func newChoice(target *string, allowed ...string) *choice {
	return &choice{target: target, allowed: allowed}
}

func (c *choice) String() string { return *c.target }

func (c *choice) Type() string { return "string" }

func (c *choice) Set(v string) error {
	if !slices.Contains(c.allowed, v) {
		return fmt.Errorf("invalid value %q (valid: %s)", v, strings.Join(c.allowed, ", "))
	}
	*c.target = v
	return nil
}

// openStore opens the configured store, once per invocation.
func (a *app) openStore() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if err := security.ValidateDataPath(a.cfg.Store); err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}
	st, err := store.Open(a.cfg.Store, store.WithLogger(a.logger.Named("store")))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	a.store = st
	return st, nil
}

func (a *app) jsonOutput() bool {
	return a.format == formatJSON
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// previewer returns a swatch renderer for w, or nil when swatches are off.
func (a *app) previewer(w io.Writer) *colour.Previewer {
	switch a.cfg.Display.Preview {
	case config.PreviewNever:
		return nil
	case config.PreviewAlways:
		return colour.NewPreviewer(w, true)
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colour.NewPreviewer(w, false)
	}
	return nil
}

// status prints a progress line unless --quiet is set.
func (a *app) status(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
