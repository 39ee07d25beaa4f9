package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletto/internal/compression"
	"github.com/jmylchreest/paletto/internal/security"
)

func newBackupCmd(a *app) *cobra.Command {
	var formatName string
	cmd := &cobra.Command{
		Use:   "backup <file>",
		Short: "Write a backup of saved colours and palettes",
		Long: `Write the store to a backup file. The encoding follows the file extension
(.xz, .gz, otherwise plain JSON) unless --compression is given. Use "-" to
write to stdout.

Examples:
  paletto backup palettes.json.xz
  paletto backup - --compression gzip > palettes.json.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}

			target := args[0]
			format := compression.FormatForPath(target)
			if cmd.Flags().Changed("compression") {
				if format, err = compression.ParseFormat(formatName); err != nil {
					return err
				}
			}

			if target == "-" {
				return st.Backup(cmd.OutOrStdout(), format)
			}
			if err := security.ValidateDataPath(target); err != nil {
				return fmt.Errorf("invalid backup path: %w", err)
			}
			if err := writeFileAtomic(target, func(w io.Writer) error {
				return st.Backup(w, format)
			}); err != nil {
				return err
			}
			a.status(cmd, "Wrote %s backup to %s", format, target)
			return nil
		},
	}
	cmd.Flags().StringVar(&formatName, "compression", "", "backup encoding (plain, gzip, xz)")
	return cmd
}

// writeFileAtomic writes path through a temp file in the same directory and
// renames it into place, so a failed write leaves any existing file intact.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".paletto-backup-*")
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close backup file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to set backup permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace backup file: %w", err)
	}
	return nil
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace saved colours and palettes from a backup",
		Long: `Replace the store with the contents of a backup file. Plain, gzip and xz
backups are detected automatically. The store is left untouched if the
backup is invalid. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}

			source := args[0]
			in := cmd.InOrStdin()
			if source != "-" {
				if err := security.ValidateDataPath(source); err != nil {
					return fmt.Errorf("invalid backup path: %w", err)
				}
				f, err := os.Open(source) // #nosec G304 - user-specified backup path
				if err != nil {
					return fmt.Errorf("failed to open backup file: %w", err)
				}
				defer f.Close()
				in = f
			}

			doc, err := st.Restore(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, doc)
			}
			fmt.Fprintf(out, "Restored %d colours and %d palettes\n", len(doc.SavedColours), len(doc.Palettes))
			return nil
		},
	}
}
