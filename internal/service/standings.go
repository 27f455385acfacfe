package service

import (
	"context"
	"fmt"
	"swiss-tournament/internal/constants"
	"swiss-tournament/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StandingsService struct {
	source  StandingsSource
	players PlayerStore
	logger  zerolog.Logger
}

func NewStandingsService(source StandingsSource, players PlayerStore, logger zerolog.Logger) *StandingsService {
	return &StandingsService{source: source, players: players, logger: logger}
}

// ComputeStandings returns one row per registered player, most wins first.
// Players tied on wins are not ordered among themselves, so two calls may
// disagree on their relative order.
func (s *StandingsService) ComputeStandings(ctx context.Context) ([]domain.StandingsRow, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	rows, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute standings")
		return nil, fmt.Errorf("failed to compute standings: %w", err)
	}

	for _, row := range rows {
		if row.Losses() < 0 {
			s.logger.Warn().
				Int64("player_id", row.PlayerID).
				Int("wins", row.Wins).
				Int("matches_played", row.MatchesPlayed).
				Msg("standings row has more wins than matches played")
		}
	}

	return rows, nil
}

// Summary fetches the player count and the standings concurrently. The two
// reads are separate snapshots: a registration landing between them leaves
// PlayerCount and len(Standings) out of step.
func (s *StandingsService) Summary(ctx context.Context) (*domain.Summary, error) {
	var summary domain.Summary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(gctx, constants.DatabaseTimeout)
		defer cancel()

		count, err := s.players.Count(ctx)
		if err != nil {
			return err
		}
		summary.PlayerCount = count
		return nil
	})
	g.Go(func() error {
		rows, err := s.ComputeStandings(gctx)
		if err != nil {
			return err
		}
		summary.Standings = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
