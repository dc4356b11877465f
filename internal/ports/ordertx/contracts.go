package ordertx

import (
	"context"

	"moving-estimate-service/internal/domain"
)

// Repository is the transaction-scoped order repository
type Repository interface {
	InsertCustomer(ctx context.Context, c *domain.Customer) (int64, error)
	InsertOptionService(ctx context.Context, customerID int64, service domain.OptionalServiceType) error
	BatchInsertPackages(ctx context.Context, packages []domain.CustomerPackage) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
