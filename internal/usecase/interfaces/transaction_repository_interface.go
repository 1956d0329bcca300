package interfaces

//go:generate mockgen -source=transaction_repository_interface.go -destination=mocks/mock_transaction_repository_interface.go -package=mock_interfaces

import (
	"context"
	"errors"

	"paypal_checkout/internal/domain/entities"
)

// ErrTransactionSettled is returned by Update when another writer already
// settled the stored record.
var ErrTransactionSettled = errors.New("transaction already settled")

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// Update only replaces a pending record, except that a completed outcome
// also replaces a failed one: an executed payment is never lost, and a
// completed record is never overwritten.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
}
