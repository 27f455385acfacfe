package repository

import (
	"context"
	"fmt"
	"swiss-tournament/internal/db"
	"swiss-tournament/internal/domain"
	"time"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewPlayerRepository(queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		logger:  logger,
	}
}

// Register inserts a player and returns it with the id the database assigned.
func (r *PlayerRepository) Register(ctx context.Context, name string) (*domain.Player, error) {
	createdAt := time.Now().UTC()
	id, err := r.queries.InsertPlayer(ctx, db.InsertPlayerParams{
		Name:      name,
		CreatedAt: createdAt,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("name", name).Msg("failed to register player")
		return nil, fmt.Errorf("failed to register player: %w", classify(err))
	}

	r.logger.Debug().Int64("player_id", id).Str("name", name).Msg("player registered")
	return &domain.Player{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.queries.CountPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", classify(err))
	}
	return count, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", classify(err))
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = domain.Player{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
		}
	}
	return result, nil
}

// DeleteAll removes every player. Matches reference players, so they must be
// deleted first.
func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	n, err := r.queries.DeletePlayers(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to delete players")
		return fmt.Errorf("failed to delete players: %w", classify(err))
	}
	r.logger.Info().Int64("deleted", n).Msg("players deleted")
	return nil
}
