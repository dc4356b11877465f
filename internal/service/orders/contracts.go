package orders

import (
	"context"

	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/ports/ordertx"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) error
}

// publisher notifies downstream systems of an accepted order. Implemented
// by the Kafka producer; nil disables publishing.
type publisher interface {
	PublishAccepted(ctx context.Context, result domain.RegisterResult) error
}

type counter interface {
	Inc()
}
