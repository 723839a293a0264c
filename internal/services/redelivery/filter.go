package redelivery

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Filter remembers recently answered message IDs so a callback GroupMe delivers twice
// is only answered once.
type Filter struct {
	cache *cache.Cache
}

// NewFilter creates a Filter that remembers message IDs for window.
// A window of zero or less returns a Filter that lets everything through.
func NewFilter(window time.Duration) *Filter {
	if window <= 0 {
		return &Filter{}
	}
	return &Filter{
		cache: cache.New(window, 2*window),
	}
}

// FirstDelivery reports whether messageID has not been seen within the window, and records it.
func (f *Filter) FirstDelivery(messageID string) bool {
	if f.cache == nil {
		return true
	}
	// Add fails if the key is already present and unexpired, which makes check-and-set atomic.
	return f.cache.Add(messageID, struct{}{}, cache.DefaultExpiration) == nil
}
