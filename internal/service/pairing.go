package service

import (
	"context"
	"swiss-tournament/internal/domain"

	"github.com/rs/zerolog"
)

// PairAdjacent pairs standings positions (0,1), (2,3), ... in order. With an
// odd number of rows the last one is left out and returned separately.
func PairAdjacent(rows []domain.StandingsRow) ([]domain.Pairing, *domain.StandingsRow) {
	pairings := make([]domain.Pairing, 0, len(rows)/2)
	for i := 0; i+1 < len(rows); i += 2 {
		pairings = append(pairings, domain.Pairing{
			ID1:   rows[i].PlayerID,
			Name1: rows[i].Name,
			ID2:   rows[i+1].PlayerID,
			Name2: rows[i+1].Name,
		})
	}

	if len(rows)%2 == 1 {
		unpaired := rows[len(rows)-1]
		return pairings, &unpaired
	}
	return pairings, nil
}

type PairingService struct {
	standings *StandingsService
	logger    zerolog.Logger
}

func NewPairingService(standings *StandingsService, logger zerolog.Logger) *PairingService {
	return &PairingService{standings: standings, logger: logger}
}

// ComputeRound pairs the current standings for the next round.
func (s *PairingService) ComputeRound(ctx context.Context) (*domain.Round, error) {
	rows, err := s.standings.ComputeStandings(ctx)
	if err != nil {
		return nil, err
	}

	pairings, unpaired := PairAdjacent(rows)
	if unpaired != nil {
		s.logger.Warn().
			Int64("player_id", unpaired.PlayerID).
			Str("name", unpaired.Name).
			Int("players", len(rows)).
			Msg("odd number of players, lowest ranked player left unpaired")
	}

	s.logger.Info().Int("pairings", len(pairings)).Msg("pairings computed")
	return &domain.Round{Pairings: pairings, Unpaired: unpaired}, nil
}

// ComputePairings returns only the pairings of ComputeRound.
func (s *PairingService) ComputePairings(ctx context.Context) ([]domain.Pairing, error) {
	round, err := s.ComputeRound(ctx)
	if err != nil {
		return nil, err
	}
	return round.Pairings, nil
}
