package service

import (
	"context"
	"swiss-tournament/internal/constants"
	"swiss-tournament/internal/domain"

	"github.com/rs/zerolog"
)

type MatchService struct {
	repo   MatchStore
	logger zerolog.Logger
}

func NewMatchService(repo MatchStore, logger zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, logger: logger}
}

func (s *MatchService) ReportMatch(ctx context.Context, winnerID, loserID int64) (*domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	match, err := s.repo.Record(ctx, winnerID, loserID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("match_id", match.ID).
		Int64("winner_id", winnerID).
		Int64("loser_id", loserID).
		Msg("match reported")
	return match, nil
}

func (s *MatchService) DeleteMatches(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.DeleteAll(ctx)
}
