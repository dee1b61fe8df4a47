package usecase

import (
	"context"
	"time"
)

const catalogCacheKey = "careers:catalog:v1"

// CatalogCache stores the seeded career catalog between requests. Misses and
// failures fall through to the database.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
