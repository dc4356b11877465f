package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	geoFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geo_fallback_total",
		Help: "Total number of estimates priced via the prefecture distance table",
	})
	ordersRegisteredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_registered_total",
		Help: "Total number of orders accepted and persisted",
	})
)

func init() {
	prometheus.MustRegister(geoFallbackTotal, ordersRegisteredTotal)
}

// GeoFallbackTotal returns the counter for estimates that used the distance table instead of geocoding
func GeoFallbackTotal() prometheus.Counter {
	return geoFallbackTotal
}

// OrdersRegisteredTotal returns the counter for accepted orders
func OrdersRegisteredTotal() prometheus.Counter {
	return ordersRegisteredTotal
}
