package config

import (
	"os"
	"strconv"
)

// DefaultCategoryID is the storefront's main catalog category
// (biochimeneas). Listing requests without an explicit category fall back
// to it.
const DefaultCategoryID = 570

type Config struct {
	Addr              string
	DatabaseURL       string
	CartTokenSecret   string
	DefaultCategoryID int
	MetricsPrefix     string
}

func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := os.Getenv("CART_TOKEN_SECRET")
	if secret == "" {
		secret = "dev-cart-secret"
	}

	categoryID := DefaultCategoryID
	if v := os.Getenv("DEFAULT_CATEGORY_ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			categoryID = n
		}
	}

	prefix := os.Getenv("METRICS_PREFIX")
	if prefix == "" {
		prefix = "storefront"
	}

	return Config{
		Addr:              addr,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		CartTokenSecret:   secret,
		DefaultCategoryID: categoryID,
		MetricsPrefix:     prefix,
	}
}
