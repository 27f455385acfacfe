package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"swiss-tournament/internal/domain"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestClassify(t *testing.T) {
	plain := errors.New("syntax error")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, domain.ErrConstraint},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, domain.ErrConnectivity},
		{"sqlite cannot open", sqlite3.Error{Code: sqlite3.ErrCantOpen}, domain.ErrConnectivity},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, domain.ErrConstraint},
		{"postgres check", &pgconn.PgError{Code: "23514"}, domain.ErrConstraint},
		{"postgres connection failure", &pgconn.PgError{Code: "08006"}, domain.ErrConnectivity},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), domain.ErrConnectivity},
		{"network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, domain.ErrConnectivity},
		{"already classified", fmt.Errorf("x: %w", domain.ErrConstraint), domain.ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("expected %v in chain, got %v", tt.want, got)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("original error lost from chain: %v", got)
			}
		})
	}

	if got := classify(plain); got != plain {
		t.Errorf("expected unclassified error unchanged, got %v", got)
	}
}

func TestClassifyLeavesDeadlineAlone(t *testing.T) {
	timeout := fmt.Errorf("failed to count players: %w", context.DeadlineExceeded)

	got := classify(timeout)
	if got != timeout {
		t.Fatalf("expected deadline error unchanged, got %v", got)
	}
	if errors.Is(got, domain.ErrConnectivity) {
		t.Errorf("deadline must not be reported as a connectivity failure: %v", got)
	}
}
