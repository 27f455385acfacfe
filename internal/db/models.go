package db

import (
	"time"
)

type Player struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type Match struct {
	ID        string
	WinnerID  int64
	LoserID   int64
	CreatedAt time.Time
}

type Standing struct {
	PlayerID      int64
	Name          string
	MatchesWon    int64
	MatchesPlayed int64
}
