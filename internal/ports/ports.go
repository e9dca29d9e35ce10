package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Persistence
	UserRepository         UserRepository
	SubscriptionRepository SubscriptionRepository
	TokenRepository        TokenRepository
	IdempotencyRepository  IdempotencyRepository
	Transactor             Transactor

	// Communication
	EmailProvider EmailProvider

	// Security
	PasswordHasher PasswordHasher

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}
