package service

import "context"

// Service is a long-lived collaborator outside the tick: audio output, leaderboard link
type Service interface {
	// Name returns the unique identifier used for lookup and dependency edges
	Name() string

	// Dependencies lists services that must be initialized first
	Dependencies() []string

	// Init prepares resources; called once in dependency order
	Init() error

	// Start begins background work bound to ctx
	Start(ctx context.Context) error

	// Stop releases resources; must be safe after a failed Start
	Stop() error
}
