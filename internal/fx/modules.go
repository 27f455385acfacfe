package fx

import (
	"database/sql"
	"swiss-tournament/internal/config"
	"swiss-tournament/internal/database"
	"swiss-tournament/internal/db"
	"swiss-tournament/internal/logger"
	"swiss-tournament/internal/repository"
	"swiss-tournament/internal/server"
	"swiss-tournament/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

// config is loaded with a debug-level bootstrap logger; everything else gets
// the logger at the configured level.
func provideLogger(bootstrap zerolog.Logger, cfg *config.Config) zerolog.Logger {
	return logger.WithLevel(bootstrap, cfg.LogLevel)
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(logger.New, fx.ResultTags(`name:"bootstrap"`))),
	fx.Provide(fx.Annotate(config.Load, fx.ParamTags(`name:"bootstrap"`))),
	fx.Provide(fx.Annotate(provideLogger, fx.ParamTags(`name:"bootstrap"`))),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(fx.Annotate(repository.NewPlayerRepository, fx.As(new(service.PlayerStore)))),
	fx.Provide(fx.Annotate(repository.NewMatchRepository, fx.As(new(service.MatchStore)))),
	fx.Provide(fx.Annotate(repository.NewStandingsRepository, fx.As(new(service.StandingsSource)))),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewStandingsService),
	fx.Provide(service.NewPairingService),
	// server
	fx.Provide(server.NewTournamentServer),
)
