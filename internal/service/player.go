package service

import (
	"context"
	"fmt"
	"strings"
	"swiss-tournament/internal/constants"
	"swiss-tournament/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	repo   PlayerStore
	logger zerolog.Logger
}

func NewPlayerService(repo PlayerStore, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

// RegisterPlayer adds a player. Names need not be unique; blank names are
// rejected.
func (s *PlayerService) RegisterPlayer(ctx context.Context, name string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: player name is required", domain.ErrInvalidArgument)
	}

	player, err := s.repo.Register(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("player_id", player.ID).Str("name", player.Name).Msg("player registered")
	return player, nil
}

func (s *PlayerService) CountPlayers(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Count(ctx)
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.List(ctx)
}

// DeletePlayers removes all players. It fails with domain.ErrConstraint while
// matches still reference them.
func (s *PlayerService) DeletePlayers(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete players")
		return err
	}
	return nil
}
