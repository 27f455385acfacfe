package repository

import (
	"context"
	"fmt"
	"swiss-tournament/internal/constants"
	"swiss-tournament/internal/db"
	"swiss-tournament/internal/domain"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type MatchRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewMatchRepository(queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		logger:  logger,
	}
}

// Record appends one match result. Unknown player ids and self-matches are
// rejected by the schema and come back as domain.ErrConstraint.
func (r *MatchRepository) Record(ctx context.Context, winnerID, loserID int64) (*domain.Match, error) {
	id, err := gonanoid.New(constants.MatchIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	match := &domain.Match{
		ID:        id,
		WinnerID:  winnerID,
		LoserID:   loserID,
		CreatedAt: time.Now().UTC(),
	}

	err = r.queries.InsertMatch(ctx, db.InsertMatchParams{
		ID:        match.ID,
		WinnerID:  match.WinnerID,
		LoserID:   match.LoserID,
		CreatedAt: match.CreatedAt,
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("winner_id", winnerID).
			Int64("loser_id", loserID).
			Msg("failed to record match")
		return nil, fmt.Errorf("failed to record match %d vs %d: %w", winnerID, loserID, classify(err))
	}

	r.logger.Debug().
		Str("match_id", match.ID).
		Int64("winner_id", winnerID).
		Int64("loser_id", loserID).
		Msg("match recorded")
	return match, nil
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	n, err := r.queries.DeleteMatches(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to delete matches")
		return fmt.Errorf("failed to delete matches: %w", classify(err))
	}
	r.logger.Info().Int64("deleted", n).Msg("matches deleted")
	return nil
}
