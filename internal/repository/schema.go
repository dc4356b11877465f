package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"moving-estimate-service/internal/domain"
)

// InitSchema creates the rate and order tables if they do not exist.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS prefectures (
            id   TEXT PRIMARY KEY,
            name TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS prefecture_distances (
            from_prefecture_id TEXT NOT NULL REFERENCES prefectures(id),
            to_prefecture_id   TEXT NOT NULL REFERENCES prefectures(id),
            distance_km        DOUBLE PRECISION NOT NULL CHECK (distance_km >= 0),
            PRIMARY KEY (from_prefecture_id, to_prefecture_id)
        )`,
		`CREATE TABLE IF NOT EXISTS package_box_rates (
            package_type  TEXT PRIMARY KEY,
            boxes_per_unit INTEGER NOT NULL CHECK (boxes_per_unit > 0)
        )`,
		`CREATE TABLE IF NOT EXISTS truck_price_tiers (
            max_boxes INTEGER PRIMARY KEY,
            price     INTEGER NOT NULL CHECK (price >= 0)
        )`,
		`CREATE TABLE IF NOT EXISTS optional_service_prices (
            service_code TEXT PRIMARY KEY,
            price        INTEGER NOT NULL CHECK (price >= 0)
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id                BIGSERIAL PRIMARY KEY,
            name              TEXT NOT NULL,
            tel               TEXT NOT NULL DEFAULT '',
            email             TEXT NOT NULL DEFAULT '',
            old_prefecture_id TEXT NOT NULL REFERENCES prefectures(id),
            new_prefecture_id TEXT NOT NULL REFERENCES prefectures(id),
            old_address       TEXT NOT NULL DEFAULT '',
            new_address       TEXT NOT NULL DEFAULT '',
            created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS customer_option_services (
            customer_id  BIGINT NOT NULL REFERENCES customers(id),
            service_code TEXT NOT NULL,
            PRIMARY KEY (customer_id, service_code)
        )`,
		`CREATE TABLE IF NOT EXISTS customer_packages (
            customer_id  BIGINT NOT NULL REFERENCES customers(id),
            package_type TEXT NOT NULL,
            quantity     INTEGER NOT NULL CHECK (quantity >= 0),
            PRIMARY KEY (customer_id, package_type)
        )`,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: statement #%d: %w", i+1, err)
		}
	}
	return nil
}

type prefectureSeed struct {
	id   string
	name string
	lat  float64
	lon  float64
}

// Prefecture capitals; the fallback distance matrix is derived from these
// as great-circle distances between capitals.
var prefectureSeeds = []prefectureSeed{
	{"1", "北海道", 43.06417, 141.34694},
	{"2", "青森県", 40.82444, 140.74000},
	{"3", "岩手県", 39.70361, 141.15250},
	{"4", "宮城県", 38.26889, 140.87194},
	{"5", "秋田県", 39.71861, 140.10250},
	{"6", "山形県", 38.24056, 140.36333},
	{"7", "福島県", 37.75000, 140.46778},
	{"8", "茨城県", 36.34139, 140.44667},
	{"9", "栃木県", 36.56583, 139.88361},
	{"10", "群馬県", 36.39111, 139.06083},
	{"11", "埼玉県", 35.85694, 139.64889},
	{"12", "千葉県", 35.60472, 140.12333},
	{"13", "東京都", 35.68944, 139.69167},
	{"14", "神奈川県", 35.44778, 139.64250},
	{"15", "新潟県", 37.90222, 139.02361},
	{"16", "富山県", 36.69528, 137.21139},
	{"17", "石川県", 36.59444, 136.62556},
	{"18", "福井県", 36.06528, 136.22194},
	{"19", "山梨県", 35.66389, 138.56833},
	{"20", "長野県", 36.65139, 138.18111},
	{"21", "岐阜県", 35.39111, 136.72222},
	{"22", "静岡県", 34.97694, 138.38306},
	{"23", "愛知県", 35.18028, 136.90667},
	{"24", "三重県", 34.73028, 136.50861},
	{"25", "滋賀県", 35.00444, 135.86833},
	{"26", "京都府", 35.02139, 135.75556},
	{"27", "大阪府", 34.68639, 135.52000},
	{"28", "兵庫県", 34.69139, 135.18306},
	{"29", "奈良県", 34.68528, 135.83278},
	{"30", "和歌山県", 34.22611, 135.16750},
	{"31", "鳥取県", 35.50361, 134.23833},
	{"32", "島根県", 35.47222, 133.05056},
	{"33", "岡山県", 34.66167, 133.93500},
	{"34", "広島県", 34.39639, 132.45944},
	{"35", "山口県", 34.18583, 131.47139},
	{"36", "徳島県", 34.06583, 134.55944},
	{"37", "香川県", 34.34028, 134.04333},
	{"38", "愛媛県", 33.84167, 132.76611},
	{"39", "高知県", 33.55972, 133.53111},
	{"40", "福岡県", 33.60639, 130.41806},
	{"41", "佐賀県", 33.24944, 130.29889},
	{"42", "長崎県", 32.74472, 129.87361},
	{"43", "熊本県", 32.78972, 130.74167},
	{"44", "大分県", 33.23806, 131.61250},
	{"45", "宮崎県", 31.91111, 131.42389},
	{"46", "鹿児島県", 31.56028, 130.55806},
	{"47", "沖縄県", 26.21250, 127.68111},
}

var packageBoxSeeds = map[domain.PackageType]int{
	domain.PackageBox:            1,
	domain.PackageBed:            4,
	domain.PackageBicycle:        2,
	domain.PackageWashingMachine: 2,
}

// tier capacity in boxes -> flat truck price in yen
var truckTierSeeds = map[int]int{
	30: 24000,
	80: 50000,
}

var optionPriceSeeds = map[domain.OptionalServiceType]int{
	domain.ServiceWashingMachineInstall: 7500,
}

// SeedRates loads the reference data. Seeding is idempotent: existing
// rows are left untouched.
func SeedRates(ctx context.Context, db *pgxpool.Pool) error {
	for _, p := range prefectureSeeds {
		_, err := db.Exec(ctx,
			`INSERT INTO prefectures (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			p.id, p.name)
		if err != nil {
			return fmt.Errorf("seed prefecture %s: %w", p.id, err)
		}
	}

	if err := seedDistances(ctx, db); err != nil {
		return err
	}

	for p, boxes := range packageBoxSeeds {
		_, err := db.Exec(ctx,
			`INSERT INTO package_box_rates (package_type, boxes_per_unit) VALUES ($1, $2)
             ON CONFLICT (package_type) DO NOTHING`,
			string(p), boxes)
		if err != nil {
			return fmt.Errorf("seed box rate %s: %w", p, err)
		}
	}

	for capacity, price := range truckTierSeeds {
		_, err := db.Exec(ctx,
			`INSERT INTO truck_price_tiers (max_boxes, price) VALUES ($1, $2)
             ON CONFLICT (max_boxes) DO NOTHING`,
			capacity, price)
		if err != nil {
			return fmt.Errorf("seed truck tier %d: %w", capacity, err)
		}
	}

	for s, price := range optionPriceSeeds {
		_, err := db.Exec(ctx,
			`INSERT INTO optional_service_prices (service_code, price) VALUES ($1, $2)
             ON CONFLICT (service_code) DO NOTHING`,
			string(s), price)
		if err != nil {
			return fmt.Errorf("seed option price %s: %w", s, err)
		}
	}

	return nil
}

// seedDistances fills the full symmetric prefecture-pair matrix,
// including zero-distance same-prefecture rows, so the fallback lookup
// is defined for every valid pair.
func seedDistances(ctx context.Context, db *pgxpool.Pool) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM prefecture_distances`).Scan(&count); err != nil {
		return fmt.Errorf("seed distances: count: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([][]any, 0, len(prefectureSeeds)*len(prefectureSeeds))
	for _, from := range prefectureSeeds {
		origin := domain.Coordinate{Lat: from.lat, Lon: from.lon}
		for _, to := range prefectureSeeds {
			km := origin.DistanceKm(domain.Coordinate{Lat: to.lat, Lon: to.lon})
			km = math.Round(km*10) / 10
			rows = append(rows, []any{from.id, to.id, km})
		}
	}

	_, err := db.CopyFrom(ctx,
		pgx.Identifier{"prefecture_distances"},
		[]string{"from_prefecture_id", "to_prefecture_id", "distance_km"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("seed distances: copy: %w", err)
	}
	return nil
}
