package memory

import (
	"sync"
	"time"

	"pdf-evidence-be/pkg/pipeline"

	"github.com/patrickmn/go-cache"
)

// TrackerRepository holds the per-client pipeline trackers. Trackers are
// transient upload state, so they expire after an hour of inactivity.
type TrackerRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewTrackerRepository() *TrackerRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &TrackerRepository{
		cache: c,
	}
}

// GetOrCreate returns the tracker for the client, creating one on first use.
// Every access refreshes the expiration window.
func (r *TrackerRepository) GetOrCreate(clientID string) *pipeline.Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if x, found := r.cache.Get(clientID); found {
		t := x.(*pipeline.Tracker)
		r.cache.Set(clientID, t, cache.DefaultExpiration)
		return t
	}
	t := pipeline.NewTracker()
	r.cache.Set(clientID, t, cache.DefaultExpiration)
	return t
}

// Get returns the tracker for the client if one exists.
func (r *TrackerRepository) Get(clientID string) (*pipeline.Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if x, found := r.cache.Get(clientID); found {
		return x.(*pipeline.Tracker), true
	}
	return nil, false
}

func (r *TrackerRepository) Delete(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(clientID)
}
