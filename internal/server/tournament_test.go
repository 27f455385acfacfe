package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"swiss-tournament/internal/api"
	"swiss-tournament/internal/config"
	"swiss-tournament/internal/constants"
	"swiss-tournament/internal/database"
	"swiss-tournament/internal/db"
	"swiss-tournament/internal/middleware"
	"swiss-tournament/internal/repository"
	"swiss-tournament/internal/service"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T) *api.Client {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		DBDriver: constants.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "tournament.db"),
	}
	sqlDB, err := database.New(cfg, logger)
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	players := repository.NewPlayerRepository(queries, logger)
	matches := repository.NewMatchRepository(queries, logger)
	standings := repository.NewStandingsRepository(sqlDB, queries, logger)

	standingsSvc := service.NewStandingsService(standings, players, logger)
	srv := NewTournamentServer(
		service.NewPlayerService(players, logger),
		service.NewMatchService(matches, logger),
		standingsSvc,
		service.NewPairingService(standingsSvc, logger),
	)

	mux := http.NewServeMux()
	path, handler := NewTournamentHandler(srv)
	mux.Handle(path, middleware.RequestID(logger)(handler))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return api.NewClient(ts.URL, 5*time.Second)
}

func registerAll(t *testing.T, c *api.Client, names ...string) map[string]int64 {
	t.Helper()
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		p, err := c.RegisterPlayer(context.Background(), name)
		if err != nil {
			t.Fatalf("RegisterPlayer(%q): %v", name, err)
		}
		ids[name] = p.ID
	}
	return ids
}

func expectCode(t *testing.T, err error, code string) {
	t.Helper()
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected API error with code %s, got %v", code, err)
	}
	if apiErr.Code != code {
		t.Errorf("expected code %s, got %s (%s)", code, apiErr.Code, apiErr.Message)
	}
}

func TestFourPlayerRound(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	ids := registerAll(t, c, "A", "B", "C", "D")

	count, err := c.CountPlayers(ctx)
	if err != nil {
		t.Fatalf("CountPlayers: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 players, got %d", count)
	}

	standings, err := c.PlayerStandings(ctx)
	if err != nil {
		t.Fatalf("PlayerStandings: %v", err)
	}
	if len(standings) != 4 {
		t.Fatalf("expected 4 standings rows, got %d", len(standings))
	}
	for _, s := range standings {
		if s.Wins != 0 || s.MatchesPlayed != 0 {
			t.Errorf("expected fresh record, got %+v", s)
		}
	}

	round, err := c.SwissPairings(ctx)
	if err != nil {
		t.Fatalf("SwissPairings: %v", err)
	}
	if len(round.Pairings) != 2 || round.Unpaired != nil {
		t.Fatalf("expected 2 pairings and nobody left out, got %+v", round)
	}

	if _, err := c.ReportMatch(ctx, ids["A"], ids["B"]); err != nil {
		t.Fatalf("ReportMatch: %v", err)
	}
	if _, err := c.ReportMatch(ctx, ids["C"], ids["D"]); err != nil {
		t.Fatalf("ReportMatch: %v", err)
	}

	round, err = c.SwissPairings(ctx)
	if err != nil {
		t.Fatalf("SwissPairings: %v", err)
	}

	winners := map[int64]bool{ids["A"]: true, ids["C"]: true}
	for _, p := range round.Pairings {
		if winners[p.ID1] != winners[p.ID2] {
			t.Errorf("winner paired with loser: %+v", p)
		}
	}
	first := round.Pairings[0]
	if !winners[first.ID1] || !winners[first.ID2] {
		t.Errorf("expected winners in the first pairing, got %+v", first)
	}
}

func TestOddFieldLeavesOnePlayerOut(t *testing.T) {
	c := newTestClient(t)
	registerAll(t, c, "A", "B", "C", "D", "E")

	round, err := c.SwissPairings(context.Background())
	if err != nil {
		t.Fatalf("SwissPairings: %v", err)
	}
	if len(round.Pairings) != 2 {
		t.Errorf("expected 2 pairings, got %d", len(round.Pairings))
	}
	if round.Unpaired == nil {
		t.Fatal("expected an unpaired player")
	}

	seen := map[int64]bool{round.Unpaired.PlayerID: true}
	for _, p := range round.Pairings {
		for _, id := range []int64{p.ID1, p.ID2} {
			if seen[id] {
				t.Errorf("player %d appears twice", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct players accounted for, got %d", len(seen))
	}
}

func TestErrorCodes(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	ids := registerAll(t, c, "A", "B")

	_, err := c.RegisterPlayer(ctx, "  ")
	expectCode(t, err, "invalid_argument")

	_, err = c.ReportMatch(ctx, ids["A"], ids["A"])
	expectCode(t, err, "failed_precondition")

	_, err = c.ReportMatch(ctx, ids["A"], 9999)
	expectCode(t, err, "failed_precondition")

	if _, err := c.ReportMatch(ctx, ids["A"], ids["B"]); err != nil {
		t.Fatalf("ReportMatch: %v", err)
	}
	expectCode(t, c.DeletePlayers(ctx), "failed_precondition")
}

func TestResetAndSummary(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	ids := registerAll(t, c, "A", "B", "C")

	if _, err := c.ReportMatch(ctx, ids["B"], ids["C"]); err != nil {
		t.Fatalf("ReportMatch: %v", err)
	}

	summary, err := c.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.PlayerCount != 3 || len(summary.Standings) != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Standings[0].PlayerID != ids["B"] {
		t.Errorf("expected B to lead, got %+v", summary.Standings[0])
	}

	players, err := c.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(players) != 3 {
		t.Errorf("expected 3 players, got %d", len(players))
	}

	if err := c.DeleteMatches(ctx); err != nil {
		t.Fatalf("DeleteMatches: %v", err)
	}
	if err := c.DeletePlayers(ctx); err != nil {
		t.Fatalf("DeletePlayers: %v", err)
	}

	count, err := c.CountPlayers(ctx)
	if err != nil {
		t.Fatalf("CountPlayers: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty tournament after reset, got %d", count)
	}

	round, err := c.SwissPairings(ctx)
	if err != nil {
		t.Fatalf("SwissPairings: %v", err)
	}
	if len(round.Pairings) != 0 || round.Unpaired != nil {
		t.Errorf("expected no pairings for an empty field, got %+v", round)
	}
}
