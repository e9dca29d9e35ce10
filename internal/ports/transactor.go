package ports

import "context"

// Transactor runs fn inside a database transaction. Repositories called with
// the ctx passed to fn participate in that transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
