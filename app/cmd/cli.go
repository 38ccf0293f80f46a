package cmd

import (
	"context"
	"log"
	"os"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/configs"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/db/seeders"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models/migrations"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/services"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed a demo equipment catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.Seed(ctx, db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "backfill",
				Usage: "Insert missing (product, field) value rows for every category",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					svc := services.NewBackfillService(
						repositories.NewCategoryRepository(db),
						repositories.NewProductRepository(db),
						repositories.NewProductValueRepository(db),
					)
					if err := svc.BackfillAll(ctx); err != nil {
						return err
					}
					log.Println("✅ Backfill complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
