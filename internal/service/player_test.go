package service

import (
	"context"
	"errors"
	"swiss-tournament/internal/domain"
	"testing"

	"github.com/rs/zerolog"
)

func TestRegisterPlayerRejectsBlankName(t *testing.T) {
	repo := &fakePlayers{}
	svc := NewPlayerService(repo, zerolog.Nop())

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := svc.RegisterPlayer(context.Background(), name); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("name %q: expected invalid argument, got %v", name, err)
		}
	}
	if len(repo.players) != 0 {
		t.Errorf("expected nothing stored, got %d players", len(repo.players))
	}
}

func TestRegisterPlayerAllowsDuplicateNames(t *testing.T) {
	repo := &fakePlayers{}
	svc := NewPlayerService(repo, zerolog.Nop())

	first, err := svc.RegisterPlayer(context.Background(), "Bruno Walton")
	if err != nil {
		t.Fatalf("RegisterPlayer: %v", err)
	}
	second, err := svc.RegisterPlayer(context.Background(), "Bruno Walton")
	if err != nil {
		t.Fatalf("RegisterPlayer: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both got %d", first.ID)
	}

	count, err := svc.CountPlayers(context.Background())
	if err != nil {
		t.Fatalf("CountPlayers: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 players, got %d", count)
	}
}
