// Command kractl runs operator tasks against the feedback database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kra.app/feedback/common/id"
	"kra.app/feedback/common/logger"
	"kra.app/feedback/core/config"
	"kra.app/feedback/core/db"
	"kra.app/feedback/internal/service"
	"kra.app/feedback/internal/store"
)

// env is what a subcommand gets once the database is reachable.
type env struct {
	db    *db.DB
	users service.UserService
}

type envLoader func(ctx context.Context) (*env, func(), error)

func main() {
	if err := newRootCmd(loadEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(load envLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "kractl",
		Short:         "Operator tools for the KRA feedback system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd(load))
	root.AddCommand(newUsersCmd(func(ctx context.Context) (userAdmin, func(), error) {
		e, closeFn, err := load(ctx)
		if err != nil {
			return nil, nil, err
		}
		return e.users, closeFn, nil
	}))

	return root
}

func loadEnv(ctx context.Context) (*env, func(), error) {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	if err := id.Init(cfg.NodeID); err != nil {
		return nil, nil, fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	stores := store.NewStores(database.Queries())
	return &env{
		db:    database,
		users: service.NewUserService(stores.Users(), stores.Teams()),
	}, database.Close, nil
}
