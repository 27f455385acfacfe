package domain

import "errors"

var (
	// ErrConnectivity marks failures to reach the database.
	ErrConnectivity = errors.New("persistence unreachable")
	// ErrConstraint marks writes rejected by schema constraints, such as a
	// match referencing an unknown player.
	ErrConstraint      = errors.New("constraint violation")
	ErrInvalidArgument = errors.New("invalid argument")
)
