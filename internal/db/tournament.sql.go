package db

import (
	"context"
	"time"
)

const countPlayers = `-- name: CountPlayers :one
SELECT COUNT(*) FROM players
`

func (q *Queries) CountPlayers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPlayers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteMatches = `-- name: DeleteMatches :execrows
DELETE FROM matches
`

func (q *Queries) DeleteMatches(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMatches)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deletePlayers = `-- name: DeletePlayers :execrows
DELETE FROM players
`

func (q *Queries) DeletePlayers(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePlayers)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const insertPlayer = `-- name: InsertPlayer :one
INSERT INTO players (name, created_at) VALUES ($1, $2)
RETURNING id
`

type InsertPlayerParams struct {
	Name      string
	CreatedAt time.Time
}

func (q *Queries) InsertPlayer(ctx context.Context, arg InsertPlayerParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, insertPlayer, arg.Name, arg.CreatedAt)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listPlayers = `-- name: ListPlayers :many
SELECT id, name, created_at FROM players
ORDER BY id
`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertMatch = `-- name: InsertMatch :exec
INSERT INTO matches (id, winner_id, loser_id, created_at) VALUES ($1, $2, $3, $4)
`

type InsertMatchParams struct {
	ID        string
	WinnerID  int64
	LoserID   int64
	CreatedAt time.Time
}

func (q *Queries) InsertMatch(ctx context.Context, arg InsertMatchParams) error {
	_, err := q.db.ExecContext(ctx, insertMatch,
		arg.ID,
		arg.WinnerID,
		arg.LoserID,
		arg.CreatedAt,
	)
	return err
}

// No secondary sort key: rows tied on matches_won come back in whatever
// order the engine produces.
const getStandings = `-- name: GetStandings :many
SELECT player_id, name, matches_won, matches_played FROM standings
ORDER BY matches_won DESC
`

func (q *Queries) GetStandings(ctx context.Context) ([]Standing, error) {
	rows, err := q.db.QueryContext(ctx, getStandings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Standing
	for rows.Next() {
		var i Standing
		if err := rows.Scan(
			&i.PlayerID,
			&i.Name,
			&i.MatchesWon,
			&i.MatchesPlayed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
