package memory

import (
	"time"

	"studysage-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type ModuleStateRepository struct {
	cache *cache.Cache
}

func NewModuleStateRepository() *ModuleStateRepository {
	// Default expiration of 1 hour, purge every 10 minutes. A study session
	// left idle longer than that simply rebuilds its state on next touch.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ModuleStateRepository{
		cache: c,
	}
}

func (r *ModuleStateRepository) Save(state *store.ModuleState) {
	r.cache.Set(state.SessionID, state, cache.DefaultExpiration)
}

func (r *ModuleStateRepository) Get(sessionID string) (*store.ModuleState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.ModuleState), true
	}
	return nil, false
}

func (r *ModuleStateRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
