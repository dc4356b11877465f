package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "estimate_db",
}

// 100 yen per km of the move
var defaultPricing = Pricing{
	PricePerKm: 100,
}

var defaultGeo = Geo{
	Enabled: false,
	BaseURL: "https://map.yahooapis.jp",
	Timeout: 3 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultPricing returns the default pricing constants.
func DefaultPricing() Pricing {
	return defaultPricing
}

// DefaultGeo returns the default geocoder settings.
func DefaultGeo() Geo {
	return defaultGeo
}
