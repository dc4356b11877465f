package estimate

import (
	"context"
	"math"
	"time"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/logx"
)

// Service computes the estimated price for a relocation order.
type Service struct {
	rates            rateSource
	geo              geoResolver
	geoEnabled       bool
	pricePerKm       int
	operationTimeout time.Duration
	logger           logx.Logger
	fallbacks        counter
}

// NewService - creates a new estimate Service. geo may be nil; the geocode
// path then never runs regardless of enabled.
func NewService(rates rateSource, geo geoResolver, enabled bool, pricePerKm int, timeout time.Duration, logger logx.Logger, fallbacks counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if pricePerKm <= 0 {
		pricePerKm = 100
	}
	return &Service{
		rates:            rates,
		geo:              geo,
		geoEnabled:       enabled,
		pricePerKm:       pricePerKm,
		operationTimeout: timeout,
		logger:           logger,
		fallbacks:        fallbacks,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Quote returns the estimated total price in yen for an order. The order
// is not persisted.
func (s *Service) Quote(ctx context.Context, order *domain.Order) (int, error) {
	if order == nil || !order.Validate() {
		return 0, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	distance, err := s.resolveDistance(ctx, order)
	if err != nil {
		return 0, err
	}

	priceForDistance := int(math.Floor(distance * float64(s.pricePerKm)))

	boxes := 0
	for _, p := range domain.PackageTypes() {
		perUnit, err := s.rates.BoxesPerUnit(ctx, p)
		if err != nil {
			return 0, err
		}
		boxes += order.Quantity(p) * perUnit
	}

	priceForTruck, err := s.rates.TruckPriceForBoxes(ctx, boxes)
	if err != nil {
		return 0, err
	}

	priceForOptions := 0
	for _, svc := range order.OptionalServices {
		price, err := s.rates.OptionalServicePrice(ctx, svc)
		if err != nil {
			return 0, err
		}
		priceForOptions += price
	}

	total := priceForDistance + priceForTruck + priceForOptions

	s.logger.Info("estimate computed",
		logx.String("event", "estimate_computed"),
		logx.Float64("distance_km", distance),
		logx.Int("boxes", boxes),
		logx.Int("price", total),
	)

	return total, nil
}

// resolveDistance tries the geocode path when it is enabled and wired,
// swallowing every failure there, then falls back to the prefecture-pair
// table. The returned distance is always finite and non-negative; a
// missing fallback row propagates as a configuration error.
func (s *Service) resolveDistance(ctx context.Context, order *domain.Order) (float64, error) {
	if s.geoEnabled && s.geo != nil {
		if km, err := s.geoDistance(ctx, order); err == nil {
			return km, nil
		} else {
			s.logger.Debug("geocode failed, using distance table",
				logx.String("event", "geocode_fallback"),
				logx.Err(err),
			)
		}
	}

	if s.fallbacks != nil {
		s.fallbacks.Inc()
	}

	km, err := s.rates.DistanceBetween(ctx, order.OldPrefectureID, order.NewPrefectureID)
	if err != nil {
		return 0, err
	}
	if km < 0 || math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, apperr.ErrRateMissing
	}
	return km, nil
}

// geoDistance resolves both endpoints to coordinates and returns the
// great-circle distance. Addresses are prefixed with the prefecture name,
// matching what the customer typed after picking a prefecture.
func (s *Service) geoDistance(ctx context.Context, order *domain.Order) (float64, error) {
	fromName, err := s.rates.PrefectureName(ctx, order.OldPrefectureID)
	if err != nil {
		return 0, err
	}
	toName, err := s.rates.PrefectureName(ctx, order.NewPrefectureID)
	if err != nil {
		return 0, err
	}

	from, err := s.geo.Resolve(ctx, fromName+order.OldAddress)
	if err != nil {
		return 0, err
	}
	to, err := s.geo.Resolve(ctx, toName+order.NewAddress)
	if err != nil {
		return 0, err
	}

	km := from.DistanceKm(to)
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return 0, apperr.ErrInvalid
	}
	return km, nil
}

// Prefectures returns the reference prefecture list in id order.
func (s *Service) Prefectures(ctx context.Context) ([]domain.Prefecture, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.rates.AllPrefectures(ctx)
}
