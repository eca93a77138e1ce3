package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM. Every multi-step lifecycle operation (ledger
// update + request update + notification create/delete) runs through Execute
// so it commits or aborts as a unit.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound
// to a specific transaction. This ensures all repository operations within a
// transaction use the same database connection.
type RepositoryFactory interface {
	// Requests returns a RequestRepository bound to the current transaction.
	Requests() RequestRepository

	// HelpHistories returns a HelpHistoryRepository bound to the current transaction.
	HelpHistories() HelpHistoryRepository

	// Notifications returns a NotificationRepository bound to the current transaction.
	Notifications() NotificationRepository

	// Reviews returns a ReviewRepository bound to the current transaction.
	Reviews() ReviewRepository

	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository
}
