package orders

import (
	"context"
	"time"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/logx"
	"moving-estimate-service/internal/ports/ordertx"
)

// Service accepts orders: it writes the customer, the selected optional
// services and the per-item package rows in a single transaction.
type Service struct {
	repo             txRunner
	events           publisher
	operationTimeout time.Duration
	logger           logx.Logger
	registered       counter
}

// NewService - creates a new order registration Service. events may be nil.
func NewService(repo txRunner, events publisher, timeout time.Duration, logger logx.Logger, registered counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		events:           events,
		operationTimeout: timeout,
		logger:           logger,
		registered:       registered,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register persists an accepted order. Either all rows are written or
// none are. A publish failure after commit is logged, never surfaced.
func (s *Service) Register(ctx context.Context, order *domain.Order) (domain.RegisterResult, error) {
	if order == nil || !order.Validate() {
		return domain.RegisterResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.RegisterResult

	err := s.repo.WithTx(ctx, func(tx ordertx.Repository) error {
		customer := domain.CustomerFromOrder(order)
		customerID, err := tx.InsertCustomer(ctx, &customer)
		if err != nil {
			return err
		}

		for _, svc := range order.OptionalServices {
			if err := tx.InsertOptionService(ctx, customerID, svc); err != nil {
				return err
			}
		}

		packages := make([]domain.CustomerPackage, 0, len(domain.PackageTypes()))
		for _, p := range domain.PackageTypes() {
			packages = append(packages, domain.CustomerPackage{
				CustomerID:  customerID,
				PackageType: p,
				Quantity:    order.Quantity(p),
			})
		}
		if err := tx.BatchInsertPackages(ctx, packages); err != nil {
			return err
		}

		result = domain.RegisterResult{
			CustomerID:       customerID,
			OptionalServices: order.OptionalServices,
			Packages:         packages,
		}
		return nil
	})
	if err != nil {
		return domain.RegisterResult{}, err
	}

	if s.registered != nil {
		s.registered.Inc()
	}

	s.logger.Info("order registered",
		logx.String("event", "order_registered"),
		logx.Int64("customer_id", result.CustomerID),
		logx.Int("option_services", len(result.OptionalServices)),
	)

	if s.events != nil {
		if err := s.events.PublishAccepted(ctx, result); err != nil {
			// the order is already committed; downstream catches up later
			s.logger.Warn("order event publish failed",
				logx.String("event", "order_event_publish_failed"),
				logx.Int64("customer_id", result.CustomerID),
				logx.Err(err),
			)
		}
	}

	return result, nil
}
