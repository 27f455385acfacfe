package service

import (
	"context"
	"swiss-tournament/internal/domain"
)

// PlayerStore, MatchStore and StandingsSource together form the persistence
// collaborator the tournament logic runs against.
type PlayerStore interface {
	Register(ctx context.Context, name string) (*domain.Player, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]domain.Player, error)
	DeleteAll(ctx context.Context) error
}

type MatchStore interface {
	Record(ctx context.Context, winnerID, loserID int64) (*domain.Match, error)
	DeleteAll(ctx context.Context) error
}

type StandingsSource interface {
	Fetch(ctx context.Context) ([]domain.StandingsRow, error)
}
