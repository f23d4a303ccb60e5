package domain

import "context"

// Catalog exposes the static listing collections.
type Catalog interface {
	Vehicles() []Vehicle
	Properties() []Property
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
