package state

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"oraclebot/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Store Store
}

// New provides the state Store. The file store is the default; a Postgres
// store is used when DATABASE_URL is configured.
func New(lc fx.Lifecycle, p Params) (Result, error) {
	if p.Config.DatabaseURL == "" {
		store := NewFileStore(p.Config.StatePath(), p.Logger)
		p.Logger.Info().Str("path", p.Config.StatePath()).Msg("using file state store")
		return Result{Store: store}, nil
	}

	pool, err := pgxpool.New(context.Background(), p.Config.DatabaseURL)
	if err != nil {
		return Result{}, fmt.Errorf("unable to create connection pool: %w", err)
	}

	store := NewPGStore(pool, p.Logger)

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := pool.Ping(ctx); err != nil {
					return err
				}
				p.Logger.Info().Msg("database connection established")
				return store.EnsureSchema(ctx)
			},
			OnStop: func(ctx context.Context) error {
				p.Logger.Info().Msg("closing database connection")
				pool.Close()
				return nil
			},
		},
	)

	return Result{Store: store}, nil
}

func Module() fx.Option {
	return fx.Module(
		"state",
		fx.Provide(New),
	)
}
