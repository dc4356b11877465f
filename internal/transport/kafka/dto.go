package kafka

import (
	"time"

	"moving-estimate-service/internal/domain"
)

// PackageDTO is one package row of an accepted-order event.
type PackageDTO struct {
	PackageType string `json:"package_type"`
	Quantity    int    `json:"quantity"`
}

// AcceptedEventDTO is the wire shape of an order-accepted event.
type AcceptedEventDTO struct {
	CustomerID     int64        `json:"customer_id"`
	OptionServices []string     `json:"option_services"`
	Packages       []PackageDTO `json:"packages"`
	AcceptedAt     time.Time    `json:"accepted_at"`
}

// FromDomain converts a RegisterResult to its event DTO.
func FromDomain(result domain.RegisterResult, acceptedAt time.Time) AcceptedEventDTO {
	options := make([]string, 0, len(result.OptionalServices))
	for _, s := range result.OptionalServices {
		options = append(options, string(s))
	}
	packages := make([]PackageDTO, 0, len(result.Packages))
	for _, p := range result.Packages {
		packages = append(packages, PackageDTO{
			PackageType: string(p.PackageType),
			Quantity:    p.Quantity,
		})
	}
	return AcceptedEventDTO{
		CustomerID:     result.CustomerID,
		OptionServices: options,
		Packages:       packages,
		AcceptedAt:     acceptedAt.UTC(),
	}
}
