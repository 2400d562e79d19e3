package health

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"oraclebot/internal/config"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// New starts a minimal liveness endpoint so deploy targets can probe the
// process.
func New(lc fx.Lifecycle, p Params) *http.Server {
	srv := &http.Server{
		Addr:    p.Config.HealthAddr,
		Handler: newMux(),
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				p.Logger.Info().Str("addr", srv.Addr).Msg("starting health endpoint...")
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						p.Logger.Error().Err(err).Msg("health endpoint stopped")
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				p.Logger.Info().Msg("stopping health endpoint...")
				return srv.Shutdown(ctx)
			},
		},
	)

	return srv
}

func Module() fx.Option {
	return fx.Module(
		"health",
		fx.Provide(New),
		fx.Invoke(
			func(srv *http.Server) {},
		),
	)
}
