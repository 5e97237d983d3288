package dedup

import "context"

// Store множество уже разосланных идентичностей.
// Claim атомарно проверяет и помечает: true, если идентичность новая.
type Store interface {
	Claim(ctx context.Context, identity string) (bool, error)
	Has(ctx context.Context, identity string) (bool, error)
}
