package service

import (
	"context"
	"swiss-tournament/internal/domain"
)

type fakeStandings struct {
	rows  []domain.StandingsRow
	err   error
	calls int
}

func (f *fakeStandings) Fetch(ctx context.Context) ([]domain.StandingsRow, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.StandingsRow, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

type fakePlayers struct {
	players []domain.Player
	err     error
}

func (f *fakePlayers) Register(ctx context.Context, name string) (*domain.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := domain.Player{ID: int64(len(f.players) + 1), Name: name}
	f.players = append(f.players, p)
	return &p, nil
}

func (f *fakePlayers) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.players)), nil
}

func (f *fakePlayers) List(ctx context.Context) ([]domain.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.players, nil
}

func (f *fakePlayers) DeleteAll(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.players = nil
	return nil
}

func rowsFor(names ...string) []domain.StandingsRow {
	rows := make([]domain.StandingsRow, len(names))
	for i, name := range names {
		rows[i] = domain.StandingsRow{PlayerID: int64(i + 1), Name: name}
	}
	return rows
}
