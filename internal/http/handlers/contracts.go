package handlers

import (
	"context"

	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/service/estimate"
	"moving-estimate-service/internal/service/orders"
)

type estimateUsecase interface {
	Quote(ctx context.Context, order *domain.Order) (int, error)
	Prefectures(ctx context.Context) ([]domain.Prefecture, error)
}

// NewEstimateUsecase wires an estimate.Service into an estimateUsecase.
func NewEstimateUsecase(svc *estimate.Service) estimateUsecase {
	return svc
}

type orderUsecase interface {
	Register(ctx context.Context, order *domain.Order) (domain.RegisterResult, error)
}

// NewOrderUsecase wires an orders.Service into an orderUsecase.
func NewOrderUsecase(svc *orders.Service) orderUsecase {
	return svc
}
