package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/domain"
)

// RateRepo reads the pricing reference tables. All tables are seed data;
// a missing row is reported as apperr.ErrRateMissing.
type RateRepo struct{ db *pgxpool.Pool }

// NewRateRepo creates a new RateRepo.
func NewRateRepo(db *pgxpool.Pool) *RateRepo { return &RateRepo{db: db} }

// DistanceBetween returns the reference distance in km between two
// prefectures. The table is symmetric by seed, so no direction swap is
// attempted here.
func (r *RateRepo) DistanceBetween(ctx context.Context, fromPrefID, toPrefID string) (float64, error) {
	var km float64
	err := r.db.QueryRow(ctx,
		`SELECT distance_km FROM prefecture_distances WHERE from_prefecture_id=$1 AND to_prefecture_id=$2`,
		fromPrefID, toPrefID,
	).Scan(&km)
	if err != nil {
		if IsNotFound(err) {
			return 0, fmt.Errorf("distance %s->%s: %w", fromPrefID, toPrefID, apperr.ErrRateMissing)
		}
		return 0, fmt.Errorf("get distance %s->%s: %w", fromPrefID, toPrefID, err)
	}
	return km, nil
}

// BoxesPerUnit returns how many normalized containers one unit of the
// package type occupies.
func (r *RateRepo) BoxesPerUnit(ctx context.Context, p domain.PackageType) (int, error) {
	var boxes int
	err := r.db.QueryRow(ctx,
		`SELECT boxes_per_unit FROM package_box_rates WHERE package_type=$1`, string(p),
	).Scan(&boxes)
	if err != nil {
		if IsNotFound(err) {
			return 0, fmt.Errorf("box rate for %s: %w", p, apperr.ErrRateMissing)
		}
		return 0, fmt.Errorf("get box rate for %s: %w", p, err)
	}
	return boxes, nil
}

// TruckPriceForBoxes returns the flat price of the smallest truck tier
// that accommodates the given container count.
func (r *RateRepo) TruckPriceForBoxes(ctx context.Context, boxes int) (int, error) {
	if boxes < 0 {
		return 0, fmt.Errorf("truck price for %d boxes: %w", boxes, apperr.ErrRateMissing)
	}
	var price int
	err := r.db.QueryRow(ctx,
		`SELECT price FROM truck_price_tiers WHERE max_boxes >= $1 ORDER BY max_boxes LIMIT 1`, boxes,
	).Scan(&price)
	if err != nil {
		if IsNotFound(err) {
			return 0, fmt.Errorf("truck price for %d boxes: %w", boxes, apperr.ErrRateMissing)
		}
		return 0, fmt.Errorf("get truck price for %d boxes: %w", boxes, err)
	}
	return price, nil
}

// OptionalServicePrice returns the flat price of an optional service.
func (r *RateRepo) OptionalServicePrice(ctx context.Context, s domain.OptionalServiceType) (int, error) {
	var price int
	err := r.db.QueryRow(ctx,
		`SELECT price FROM optional_service_prices WHERE service_code=$1`, string(s),
	).Scan(&price)
	if err != nil {
		if IsNotFound(err) {
			return 0, fmt.Errorf("option price for %s: %w", s, apperr.ErrRateMissing)
		}
		return 0, fmt.Errorf("get option price for %s: %w", s, err)
	}
	return price, nil
}

// AllPrefectures returns every prefecture ordered by numeric id.
func (r *RateRepo) AllPrefectures(ctx context.Context) ([]domain.Prefecture, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM prefectures ORDER BY id::int`)
	if err != nil {
		return nil, fmt.Errorf("list prefectures: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Prefecture, 0, 47)
	for rows.Next() {
		var p domain.Prefecture
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PrefectureName returns the name of a single prefecture.
func (r *RateRepo) PrefectureName(ctx context.Context, id string) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM prefectures WHERE id=$1`, id).Scan(&name)
	if err != nil {
		if IsNotFound(err) {
			return "", fmt.Errorf("prefecture %s: %w", id, apperr.ErrNotFound)
		}
		return "", fmt.Errorf("get prefecture %s: %w", id, err)
	}
	return name, nil
}
