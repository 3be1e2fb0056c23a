package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/giftshuffler/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Connect RPC server",
		Long: `Serve the directory, edition and auth services over Connect, gRPC and
gRPC-Web, plus /healthz and /metrics. Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				rootOpts.cfg.Addr = addr
			}
			return runServe(rootOpts, cmd)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from GIFTSHUFFLER_ADDR)")

	return cmd
}

func runServe(opts *RootOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	cfg := opts.cfg

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeStorage, "failed to initialize storage", err)
	}
	defer store.Close()

	jwtManager, err := newJWTManager(cfg)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeConfig, "failed to set up auth", err)
	}

	handler := server.NewHandler(server.Options{
		Store:         store,
		Shuffler:      newShuffler(cfg, store),
		JWTManager:    jwtManager,
		AuthRequired:  cfg.AuthRequired,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	if err := server.Run(ctx, server.New(cfg.Addr, handler)); err != nil {
		return out.Fail(ExitCommandError, ErrCodeServer, "server failed", err)
	}
	return nil
}
