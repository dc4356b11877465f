package estimate

import (
	"context"

	"moving-estimate-service/internal/domain"
)

type rateSource interface {
	DistanceBetween(ctx context.Context, fromPrefID, toPrefID string) (float64, error)
	BoxesPerUnit(ctx context.Context, p domain.PackageType) (int, error)
	TruckPriceForBoxes(ctx context.Context, boxes int) (int, error)
	OptionalServicePrice(ctx context.Context, s domain.OptionalServiceType) (int, error)
	AllPrefectures(ctx context.Context) ([]domain.Prefecture, error)
	PrefectureName(ctx context.Context, id string) (string, error)
}

type geoResolver interface {
	Resolve(ctx context.Context, address string) (domain.Coordinate, error)
}

type counter interface {
	Inc()
}
