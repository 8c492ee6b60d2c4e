package main

import (
	"context"
	"io"
	"log/slog"

	"sdi-showcase/cmd/bootstrap"
	"sdi-showcase/internal/handler/middleware"
	"sdi-showcase/internal/infra/recordstore"
	"sdi-showcase/internal/infra/slot"
	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/pkg/config"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/queries"
	"sdi-showcase/internal/usecase/shared"

	"github.com/spf13/cobra"
)

// app is what a subcommand needs: the loaded session and its use cases.
type app struct {
	session   *shared.Session
	listings  queries.ListingQueries
	clients   queries.ClientQueries
	listingUC commands.ListingCommands
	logger    *slog.Logger
	close     func()
}

type runWithApp func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error

// appLoader lets tests swap the configured storage for an in-memory one.
type appLoader func(ctx context.Context, stderr io.Writer) (*app, error)

func loadApp(ctx context.Context, stderr io.Writer) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := middleware.NewLoggerWithWriter(cfg.Log, stderr).GetSlogLogger()

	store, cleanup, err := bootstrap.OpenSlotStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, store, logger, cleanup), nil
}

func newApp(ctx context.Context, store slot.Store, logger *slog.Logger, cleanup func()) *app {
	session := shared.NewSession(ctx,
		recordstore.NewListingRepository(store, logger),
		recordstore.NewAffiliateRepository(store, logger),
		recordstore.NewClientRepository(store, logger),
	)
	listingForm := forms.NewListingForm()
	return &app{
		session:   session,
		listings:  queries.NewListingQueries(session, listingForm),
		clients:   queries.NewClientQueries(session, forms.NewClientForm()),
		listingUC: commands.NewListingCommands(session, listingForm, nil, clock.NewRealClock(), logger),
		logger:    logger,
		close:     cleanup,
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(loadApp)
}

func newRootCmdWith(load appLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "sdictl",
		Short:         "Inspect and maintain the showcase's stored listings, affiliates and clients",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var withApp runWithApp = func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()
			return run(cmd, a, args)
		}
	}

	root.AddCommand(
		newListCmd(withApp),
		newExportCmd(withApp),
		newRemoveListingCmd(withApp),
		newVideoCmd(),
	)
	return root
}
