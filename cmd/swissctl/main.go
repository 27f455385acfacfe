package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"swiss-tournament/internal/api"
	"swiss-tournament/internal/constants"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const usage = `usage: swissctl [-addr URL] <command> [args]

commands:
  register NAME          register a player
  count                  number of registered players
  players                list registered players
  report WINNER LOSER    record a match result by player id
  standings              current standings, most wins first
  pairings               next round pairings
  summary                player count and standings
  reset-matches          delete all matches
  reset-players          delete all players
  reset                  delete all matches, then all players
`

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fs := flag.NewFlagSet("swissctl", flag.ExitOnError)
	addr := fs.String("addr", envOr("SWISS_ADDR", "http://localhost:8080"), "tournament server base URL")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ClientTimeout)
	defer cancel()

	client := api.NewClient(*addr, constants.ClientTimeout)
	if err := run(ctx, client, os.Stdout, fs.Arg(0), fs.Args()[1:]); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			logger.Error().Int("status", apiErr.Status).Str("code", apiErr.Code).Msg(apiErr.Message)
		} else {
			logger.Error().Err(err).Str("command", fs.Arg(0)).Msg("command failed")
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("invalid arguments")

func run(ctx context.Context, client *api.Client, out io.Writer, command string, args []string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch command {
	case "register":
		if len(args) != 1 {
			return fmt.Errorf("%w: register NAME", errUsage)
		}
		player, err := client.RegisterPlayer(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\n", player.ID, player.Name)

	case "count":
		count, err := client.CountPlayers(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, count)

	case "players":
		players, err := client.ListPlayers(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME")
		for _, p := range players {
			fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Name)
		}

	case "report":
		if len(args) != 2 {
			return fmt.Errorf("%w: report WINNER LOSER", errUsage)
		}
		winner, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: winner id: %w", errUsage, err)
		}
		loser, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: loser id: %w", errUsage, err)
		}
		match, err := client.ReportMatch(ctx, winner, loser)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, match.ID)

	case "standings":
		standings, err := client.PlayerStandings(ctx)
		if err != nil {
			return err
		}
		writeStandings(w, standings)

	case "pairings":
		resp, err := client.SwissPairings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID1\tNAME1\tID2\tNAME2")
		for _, p := range resp.Pairings {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", p.ID1, p.Name1, p.ID2, p.Name2)
		}
		if resp.Unpaired != nil {
			fmt.Fprintf(w, "unpaired: %d %s\n", resp.Unpaired.PlayerID, resp.Unpaired.Name)
		}

	case "summary":
		summary, err := client.Summary(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "players: %d\n", summary.PlayerCount)
		writeStandings(w, summary.Standings)

	case "reset-matches":
		return client.DeleteMatches(ctx)

	case "reset-players":
		return client.DeletePlayers(ctx)

	case "reset":
		if err := client.DeleteMatches(ctx); err != nil {
			return err
		}
		return client.DeletePlayers(ctx)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	return nil
}

func writeStandings(w io.Writer, standings []api.Standing) {
	fmt.Fprintln(w, "ID\tNAME\tWINS\tMATCHES")
	for _, s := range standings {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", s.PlayerID, s.Name, s.Wins, s.MatchesPlayed)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
