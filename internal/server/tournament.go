package server

import (
	"context"
	"errors"
	"net/http"
	"swiss-tournament/internal/api"
	"swiss-tournament/internal/domain"
	"swiss-tournament/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

type TournamentServer struct {
	playerSvc    *service.PlayerService
	matchSvc     *service.MatchService
	standingsSvc *service.StandingsService
	pairingSvc   *service.PairingService
}

func NewTournamentServer(
	playerSvc *service.PlayerService,
	matchSvc *service.MatchService,
	standingsSvc *service.StandingsService,
	pairingSvc *service.PairingService,
) *TournamentServer {
	return &TournamentServer{
		playerSvc:    playerSvc,
		matchSvc:     matchSvc,
		standingsSvc: standingsSvc,
		pairingSvc:   pairingSvc,
	}
}

// NewTournamentHandler builds the connect handlers for every procedure and
// returns the path prefix to mount them on.
func NewTournamentHandler(s *TournamentServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	handlers := map[string]http.Handler{
		api.RegisterPlayerProcedure:  connect.NewUnaryHandler(api.RegisterPlayerProcedure, s.RegisterPlayer, opts...),
		api.CountPlayersProcedure:    connect.NewUnaryHandler(api.CountPlayersProcedure, s.CountPlayers, opts...),
		api.ListPlayersProcedure:     connect.NewUnaryHandler(api.ListPlayersProcedure, s.ListPlayers, opts...),
		api.DeletePlayersProcedure:   connect.NewUnaryHandler(api.DeletePlayersProcedure, s.DeletePlayers, opts...),
		api.ReportMatchProcedure:     connect.NewUnaryHandler(api.ReportMatchProcedure, s.ReportMatch, opts...),
		api.DeleteMatchesProcedure:   connect.NewUnaryHandler(api.DeleteMatchesProcedure, s.DeleteMatches, opts...),
		api.PlayerStandingsProcedure: connect.NewUnaryHandler(api.PlayerStandingsProcedure, s.PlayerStandings, opts...),
		api.SwissPairingsProcedure:   connect.NewUnaryHandler(api.SwissPairingsProcedure, s.SwissPairings, opts...),
		api.SummaryProcedure:         connect.NewUnaryHandler(api.SummaryProcedure, s.Summary, opts...),
	}

	return api.TournamentServicePath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (s *TournamentServer) RegisterPlayer(ctx context.Context, req *connect.Request[api.RegisterPlayerRequest]) (*connect.Response[api.Player], error) {
	player, err := s.playerSvc.RegisterPlayer(ctx, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(toAPIPlayer(player)), nil
}

func (s *TournamentServer) CountPlayers(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.CountPlayersResponse], error) {
	count, err := s.playerSvc.CountPlayers(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.CountPlayersResponse{Count: count}), nil
}

func (s *TournamentServer) ListPlayers(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.ListPlayersResponse], error) {
	players, err := s.playerSvc.ListPlayers(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	resp := &api.ListPlayersResponse{Players: make([]api.Player, len(players))}
	for i := range players {
		resp.Players[i] = *toAPIPlayer(&players[i])
	}
	return connect.NewResponse(resp), nil
}

func (s *TournamentServer) DeletePlayers(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.Empty], error) {
	if err := s.playerSvc.DeletePlayers(ctx); err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *TournamentServer) ReportMatch(ctx context.Context, req *connect.Request[api.ReportMatchRequest]) (*connect.Response[api.Match], error) {
	match, err := s.matchSvc.ReportMatch(ctx, req.Msg.WinnerID, req.Msg.LoserID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.Match{
		ID:        match.ID,
		WinnerID:  match.WinnerID,
		LoserID:   match.LoserID,
		CreatedAt: match.CreatedAt,
	}), nil
}

func (s *TournamentServer) DeleteMatches(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.Empty], error) {
	if err := s.matchSvc.DeleteMatches(ctx); err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *TournamentServer) PlayerStandings(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.StandingsResponse], error) {
	rows, err := s.standingsSvc.ComputeStandings(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.StandingsResponse{Standings: toAPIStandings(rows)}), nil
}

func (s *TournamentServer) SwissPairings(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.PairingsResponse], error) {
	round, err := s.pairingSvc.ComputeRound(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	resp := &api.PairingsResponse{Pairings: make([]api.Pairing, len(round.Pairings))}
	for i, p := range round.Pairings {
		resp.Pairings[i] = api.Pairing{ID1: p.ID1, Name1: p.Name1, ID2: p.ID2, Name2: p.Name2}
	}
	if round.Unpaired != nil {
		unpaired := toAPIStanding(*round.Unpaired)
		resp.Unpaired = &unpaired
	}
	return connect.NewResponse(resp), nil
}

func (s *TournamentServer) Summary(ctx context.Context, _ *connect.Request[api.Empty]) (*connect.Response[api.SummaryResponse], error) {
	summary, err := s.standingsSvc.Summary(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.SummaryResponse{
		PlayerCount: summary.PlayerCount,
		Standings:   toAPIStandings(summary.Standings),
	}), nil
}

func toConnectError(ctx context.Context, err error) error {
	code := connect.CodeInternal
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = connect.CodeInvalidArgument
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	case errors.Is(err, domain.ErrConstraint):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, domain.ErrConnectivity):
		code = connect.CodeUnavailable
	}

	zerolog.Ctx(ctx).Warn().Err(err).Str("code", code.String()).Msg("request failed")
	return connect.NewError(code, err)
}

func toAPIPlayer(p *domain.Player) *api.Player {
	return &api.Player{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toAPIStanding(row domain.StandingsRow) api.Standing {
	return api.Standing{
		PlayerID:      row.PlayerID,
		Name:          row.Name,
		Wins:          row.Wins,
		MatchesPlayed: row.MatchesPlayed,
	}
}

func toAPIStandings(rows []domain.StandingsRow) []api.Standing {
	out := make([]api.Standing, len(rows))
	for i, row := range rows {
		out[i] = toAPIStanding(row)
	}
	return out
}
