package repository

import "errors"

var (
	// ErrGuardianNotFound is returned when no guardian row matches the id
	ErrGuardianNotFound = errors.New("guardian not found")

	// ErrGuildNotFound is returned when joining a guild that was never created
	ErrGuildNotFound = errors.New("guild not found")

	// ErrGuildExists is returned when creating a guild whose id is taken
	ErrGuildExists = errors.New("guild already exists")

	// ErrPositionRequired is returned when a guild member would have no position
	ErrPositionRequired = errors.New("guardian position is required for guild members")
)
