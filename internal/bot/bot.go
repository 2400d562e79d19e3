package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"oraclebot/internal/config"
	"oraclebot/internal/picker"
	"oraclebot/internal/quotes"
)

type Params struct {
	fx.In

	Config  *config.Config
	Catalog *quotes.Catalog
	Picker  *picker.Picker
}

type Result struct {
	fx.Out

	Bot *tbot.Bot
}

func New(lc fx.Lifecycle, p Params, log zerolog.Logger) (Result, error) {
	opts := []tbot.Option{
		tbot.WithDefaultHandler(
			func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
				handleMessage(ctx, tg, update, p.Catalog, p.Picker, p.Config, &log)
			},
		),
	}

	tg, err := tbot.New(p.Config.Token, opts...)
	if err != nil {
		return Result{}, err
	}

	tg.RegisterHandler(
		tbot.HandlerTypeMessageText, "/start", tbot.MatchTypeExact,
		func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
			handleStart(ctx, tg, update, p.Catalog, &log)
		},
	)

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				log.Info().Msg("starting telegram bot...")
				go tg.Start(context.Background())
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				return nil
			},
		},
	)

	return Result{Bot: tg}, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}
