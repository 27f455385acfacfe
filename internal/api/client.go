package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// Client calls the tournament service over the connect unary protocol with
// JSON bodies.
type Client struct {
	baseURL string
	client  *fasthttp.Client
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		timeout: timeout,
	}
}

// Error is a failed call as reported by the server.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("API error: %d", e.Status)
	}
	return fmt.Sprintf("API error: %d %s: %s", e.Status, e.Code, e.Message)
}

func (c *Client) RegisterPlayer(ctx context.Context, name string) (*Player, error) {
	return call[RegisterPlayerRequest, Player](ctx, c, RegisterPlayerProcedure, &RegisterPlayerRequest{Name: name})
}

func (c *Client) CountPlayers(ctx context.Context) (int64, error) {
	resp, err := call[Empty, CountPlayersResponse](ctx, c, CountPlayersProcedure, &Empty{})
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) ListPlayers(ctx context.Context) ([]Player, error) {
	resp, err := call[Empty, ListPlayersResponse](ctx, c, ListPlayersProcedure, &Empty{})
	if err != nil {
		return nil, err
	}
	return resp.Players, nil
}

func (c *Client) DeletePlayers(ctx context.Context) error {
	_, err := call[Empty, Empty](ctx, c, DeletePlayersProcedure, &Empty{})
	return err
}

func (c *Client) ReportMatch(ctx context.Context, winnerID, loserID int64) (*Match, error) {
	return call[ReportMatchRequest, Match](ctx, c, ReportMatchProcedure, &ReportMatchRequest{
		WinnerID: winnerID,
		LoserID:  loserID,
	})
}

func (c *Client) DeleteMatches(ctx context.Context) error {
	_, err := call[Empty, Empty](ctx, c, DeleteMatchesProcedure, &Empty{})
	return err
}

func (c *Client) PlayerStandings(ctx context.Context) ([]Standing, error) {
	resp, err := call[Empty, StandingsResponse](ctx, c, PlayerStandingsProcedure, &Empty{})
	if err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

func (c *Client) SwissPairings(ctx context.Context) (*PairingsResponse, error) {
	return call[Empty, PairingsResponse](ctx, c, SwissPairingsProcedure, &Empty{})
}

func (c *Client) Summary(ctx context.Context) (*SummaryResponse, error) {
	return call[Empty, SummaryResponse](ctx, c, SummaryProcedure, &Empty{})
}

func call[Req, Res any](ctx context.Context, c *Client, procedure string, msg *Req) (*Res, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + procedure)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Connect-Protocol-Version", "1")
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		apiErr := &Error{Status: resp.StatusCode()}
		var errBody ErrorResponse
		if err := json.Unmarshal(resp.Body(), &errBody); err == nil {
			apiErr.Code = errBody.Code
			apiErr.Message = errBody.Message
		}
		return nil, apiErr
	}

	var result Res
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
