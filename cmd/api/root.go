package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"motionstock/pkg/config"
)

type App struct {
	cfg *config.Config
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motionstock",
		Short: "Motion graphics stock catalog API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newServeCmd(app),
		newSeedCmd(app),
	)
	return cmd
}

// Execute runs the command line. Interrupts cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &App{}
	rootCmd := newRootCmd(app)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
