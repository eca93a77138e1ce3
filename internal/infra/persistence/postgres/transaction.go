// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"mutualaid/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a single GORM transaction object and hands out repository
// instances bound to that transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // a GORM transaction is itself a *gorm.DB
}

// Requests creates a request repository bound to the transaction.
func (f *gormRepositoryFactory) Requests() repository.RequestRepository {
	return NewRequestRepository(f.tx)
}

// HelpHistories creates a help history repository bound to the transaction.
func (f *gormRepositoryFactory) HelpHistories() repository.HelpHistoryRepository {
	return NewHelpHistoryRepository(f.tx)
}

// Notifications creates a notification repository bound to the transaction.
func (f *gormRepositoryFactory) Notifications() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// Reviews creates a review repository bound to the transaction.
func (f *gormRepositoryFactory) Reviews() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// Users creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) Users() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// A panic inside the callback must never leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
