package quotes

import (
	"go.uber.org/fx"

	"oraclebot/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
}

type Result struct {
	fx.Out

	Catalog *Catalog
}

func New(p Params) (Result, error) {
	catalog, err := NewCatalog(p.Config.CatalogFile)
	if err != nil {
		return Result{}, err
	}

	return Result{Catalog: catalog}, nil
}

func Module() fx.Option {
	return fx.Module(
		"quotes",
		fx.Provide(
			New,
		),
	)
}
