package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/ports/ordertx"
)

// OrderRepo persists accepted orders.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// rollback on panic, then re-panic
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// InsertCustomer - inserts the customer row and returns the assigned id.
func (r *TxRepo) InsertCustomer(ctx context.Context, c *domain.Customer) (int64, error) {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO customers
            (name, tel, email, old_prefecture_id, new_prefecture_id, old_address, new_address)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, c.Name, c.Tel, c.Email, c.OldPrefectureID, c.NewPrefectureID, c.OldAddress, c.NewAddress).Scan(&c.ID)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return c.ID, nil
}

// InsertOptionService - inserts one selected-service row for a customer.
func (r *TxRepo) InsertOptionService(ctx context.Context, customerID int64, service domain.OptionalServiceType) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO customer_option_services (customer_id, service_code)
        VALUES ($1, $2)
    `, customerID, string(service))
	if err != nil {
		return fmt.Errorf("insert option service %s for customer %d: %w", service, customerID, err)
	}
	return nil
}

// BatchInsertPackages - inserts the per-item package rows in one batch.
// Zero quantities are written as regular rows.
func (r *TxRepo) BatchInsertPackages(ctx context.Context, packages []domain.CustomerPackage) error {
	batch := &pgx.Batch{}
	for _, p := range packages {
		batch.Queue(`
            INSERT INTO customer_packages (customer_id, package_type, quantity)
            VALUES ($1, $2, $3)
        `, p.CustomerID, string(p.PackageType), p.Quantity)
	}

	results := r.tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, p := range packages {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert package %s for customer %d: %w", p.PackageType, p.CustomerID, err)
		}
	}
	return results.Close()
}
