package picker

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"oraclebot/internal/state"
)

type Params struct {
	fx.In

	Store  state.Store
	Logger zerolog.Logger
}

type Result struct {
	fx.Out

	Picker *Picker
}

func NewModule(p Params) Result {
	return Result{Picker: New(p.Store, p.Logger)}
}

func Module() fx.Option {
	return fx.Module(
		"picker",
		fx.Provide(
			NewModule,
		),
	)
}
