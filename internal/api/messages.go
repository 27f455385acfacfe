package api

import "time"

const TournamentServiceName = "swiss.v1.TournamentService"

const TournamentServicePath = "/" + TournamentServiceName + "/"

const (
	RegisterPlayerProcedure  = TournamentServicePath + "RegisterPlayer"
	CountPlayersProcedure    = TournamentServicePath + "CountPlayers"
	ListPlayersProcedure     = TournamentServicePath + "ListPlayers"
	DeletePlayersProcedure   = TournamentServicePath + "DeletePlayers"
	ReportMatchProcedure     = TournamentServicePath + "ReportMatch"
	DeleteMatchesProcedure   = TournamentServicePath + "DeleteMatches"
	PlayerStandingsProcedure = TournamentServicePath + "PlayerStandings"
	SwissPairingsProcedure   = TournamentServicePath + "SwissPairings"
	SummaryProcedure         = TournamentServicePath + "Summary"
)

type Empty struct{}

type RegisterPlayerRequest struct {
	Name string `json:"name"`
}

type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CountPlayersResponse struct {
	Count int64 `json:"count"`
}

type ListPlayersResponse struct {
	Players []Player `json:"players"`
}

type ReportMatchRequest struct {
	WinnerID int64 `json:"winnerId"`
	LoserID  int64 `json:"loserId"`
}

type Match struct {
	ID        string    `json:"id"`
	WinnerID  int64     `json:"winnerId"`
	LoserID   int64     `json:"loserId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Standing struct {
	PlayerID      int64  `json:"playerId"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

type StandingsResponse struct {
	Standings []Standing `json:"standings"`
}

type Pairing struct {
	ID1   int64  `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int64  `json:"id2"`
	Name2 string `json:"name2"`
}

type PairingsResponse struct {
	Pairings []Pairing `json:"pairings"`
	// set when the field is odd and the lowest ranked player sits out
	Unpaired *Standing `json:"unpaired,omitempty"`
}

type SummaryResponse struct {
	PlayerCount int64      `json:"playerCount"`
	Standings   []Standing `json:"standings"`
}

// ErrorResponse is the body connect writes for failed unary calls.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
