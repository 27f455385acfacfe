package repository

import (
	"context"
	"database/sql"
	"fmt"
	"swiss-tournament/internal/db"
	"swiss-tournament/internal/domain"

	"github.com/rs/zerolog"
)

type StandingsRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewStandingsRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *StandingsRepository {
	return &StandingsRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Fetch reads the standings view inside one read-only transaction, ordered by
// wins descending. Ties keep the engine's order.
func (r *StandingsRepository) Fetch(ctx context.Context) ([]domain.StandingsRow, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback()

	rows, err := r.queries.WithTx(tx).GetStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", classify(err))
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", classify(err))
	}

	result := make([]domain.StandingsRow, len(rows))
	for i, row := range rows {
		result[i] = domain.StandingsRow{
			PlayerID:      row.PlayerID,
			Name:          row.Name,
			Wins:          int(row.MatchesWon),
			MatchesPlayed: int(row.MatchesPlayed),
		}
	}

	r.logger.Debug().Int("rows", len(result)).Msg("standings fetched")
	return result, nil
}
