package main

import (
	"context"
	"os"

	"github.com/BruksfildServices01/barbershop-api/internal/cli"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-api/internal/db"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/token"
)

func main() {
	cfg := config.Load()

	root := cli.NewRootCmd(cli.Env{
		Tokens: func() cli.TokenIssuer {
			return token.NewService(cfg.JWTSecret, cfg.JWTTTL)
		},
		Users: func(ctx context.Context) (cli.Promoter, func(), error) {
			cols := dbpkg.NewMongo(ctx, cfg)
			return infraRepo.NewUserMongoRepository(cols, false), func() { cols.Disconnect(context.Background()) }, nil
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
