package health

import "context"

// DBPinger checks evidence store connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker verifies an AI provider's availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}
