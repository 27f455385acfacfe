package domain

import (
	"time"
)

type Player struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type Match struct {
	ID        string // nanoid
	WinnerID  int64
	LoserID   int64
	CreatedAt time.Time
}

// StandingsRow is derived from the match log, never stored.
type StandingsRow struct {
	PlayerID      int64
	Name          string
	Wins          int
	MatchesPlayed int
}

func (r StandingsRow) Losses() int {
	return r.MatchesPlayed - r.Wins
}

type Pairing struct {
	ID1   int64
	Name1 string
	ID2   int64
	Name2 string
}

// Round is the next set of pairings plus the player left over when the
// field is odd.
type Round struct {
	Pairings []Pairing
	Unpaired *StandingsRow
}

type Summary struct {
	PlayerCount int64
	Standings   []StandingsRow
}
