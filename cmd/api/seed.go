package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"motionstock/internal/infrastructure/seed"
	"motionstock/internal/usecase"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the built-in animation templates that are not stored yet",
		Args:  cobra.NoArgs,
		RunE:  app.handleSeed,
	}
}

func (a *App) handleSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openStores(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	created, err := usecase.NewTemplateUseCase(s.templates, seed.BuiltinTemplates).SeedTemplates(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d new templates\n", created)
	return nil
}
