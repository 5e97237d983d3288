package userbet

import (
	"time"

	"github.com/patrickmn/go-cache"

	"valuebets/internal/domain/entity"
)

// Recent недавно разосланные рекомендации по Ref, чтобы кнопки под
// карточкой могли найти ставку.
type Recent struct {
	cache *cache.Cache
}

func NewRecent(ttl time.Duration) *Recent {
	return &Recent{cache: cache.New(ttl, ttl/2)}
}

func (r *Recent) Remember(rec entity.Recommendation) {
	r.cache.SetDefault(rec.Ref(), rec)
}

func (r *Recent) Lookup(ref string) (entity.Recommendation, bool) {
	v, ok := r.cache.Get(ref)
	if !ok {
		return entity.Recommendation{}, false
	}

	rec, ok := v.(entity.Recommendation)
	return rec, ok
}
