package main

import (
	"Giftspin/config"
	"Giftspin/models"
	"Giftspin/pkg/database"
	"Giftspin/pkg/log"
	"Giftspin/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "giftspin loyalty backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "path to the yaml config",
				EnvVars: []string{"APP_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					db := database.NewDB(cfg)
					if err := db.AutoMigrate(models.All()...); err != nil {
						return fmt.Errorf("auto migrate: %w", err)
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.DriverName()))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func loadConfig(ctx *cli.Context) *config.Config {
	cfg := config.New(ctx.String("config"))
	log.SetDebug(cfg.Debug())
	return cfg
}
