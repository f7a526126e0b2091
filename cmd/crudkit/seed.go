package main

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/repository"
	"github.com/deppfellow/go-crudkit/internal/service"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		count    int
		resource string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert synthetic records using the resource factories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.loggerService.Shutdown()

			db, err := database.New(a.cfg, &a.log, a.loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			services := service.NewServices(repository.NewRepositories())
			return seed(cmd.Context(), services, db.Pool, resource, count)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of records to create")
	cmd.Flags().StringVar(&resource, "resource", "posts", "Resource to seed: users or posts")

	return cmd
}

func seed(ctx context.Context, services *service.Services, db database.Querier, resource string, count int) error {
	var factory func(context.Context, database.Querier) error
	switch resource {
	case "users":
		factory = func(ctx context.Context, db database.Querier) error {
			_, err := services.Users.Factory(ctx, db)
			return err
		}
	case "posts":
		factory = func(ctx context.Context, db database.Querier) error {
			_, err := services.Posts.Factory(ctx, db)
			return err
		}
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}

	for i := range count {
		if err := factory(ctx, db); err != nil {
			return fmt.Errorf("seeding %s %d/%d: %w", resource, i+1, count, err)
		}
	}
	return nil
}
