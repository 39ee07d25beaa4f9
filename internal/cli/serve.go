package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/paletto/internal/config"
	"github.com/jmylchreest/paletto/internal/server"
	"github.com/jmylchreest/paletto/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		listen  string
		noWatch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Long: `Serve colour tools, saved colours and palettes as a JSON API under /api/v1,
with Prometheus metrics at /metrics and a health check at /healthz.

Unless disabled, the store file is watched and reloaded when another process
changes it.

Examples:
  paletto serve
  paletto serve --listen :8080 --no-watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Server.Listen = listen
			}
			watch := a.cfg.Server.Watch && !noWatch

			// The watcher needs the store directory to exist.
			if err := os.MkdirAll(filepath.Dir(a.cfg.Store), 0o750); err != nil {
				return fmt.Errorf("failed to create store directory: %w", err)
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewHTTPServer(st, server.Config{
				Listen:          a.cfg.Server.Listen,
				ShutdownTimeout: a.cfg.Server.ShutdownDuration(),
			}, a.logger.Named("http"))

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.ListenAndServe(ctx, func(addr string) {
					a.status(cmd, "Serving on http://%s", addr)
				})
			})
			if watch {
				g.Go(func() error {
					return st.Watch(ctx, store.DefaultDebounce, srv.RefreshMetrics)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config and "+config.EnvListen+")")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the store when it changes on disk")
	return cmd
}
