package i18n

import (
	"context"
	"errors"
)

type contextKey string

func (c contextKey) String() string {
	return "rentals/i18n/" + string(c)
}

const ctxKeyProvider = contextKey("provider")

// ErrNoProvider is returned when localization state is read outside a
// provider scope.
var ErrNoProvider = errors.New("i18n: no language provider in scope; wrap the caller with WithProvider")

// WithProvider scopes p to ctx and everything derived from it.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKeyProvider, p)
}

// FromContext returns the scoped provider. It never substitutes a default.
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(ctxKeyProvider).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
