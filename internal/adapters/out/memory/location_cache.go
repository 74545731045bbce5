package memory

import (
	"context"
	"sync"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
)

// LocationCache implements ports.LocationCache in process. Entries expire
// ttl after their ReportedAt timestamp, so drivers that stop reporting
// vanish from GetAll without explicit eviction. A ttl of zero disables
// expiry.
type LocationCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]ports.DriverLocation
	order   []uuid.UUID
}

// NewLocationCache creates an empty location cache with the given entry TTL.
func NewLocationCache(ttl time.Duration) *LocationCache {
	return &LocationCache{
		ttl:     ttl,
		entries: make(map[uuid.UUID]ports.DriverLocation),
	}
}

// Set stores or refreshes a driver's live location.
func (c *LocationCache) Set(_ context.Context, location ports.DriverLocation) error {
	if err := location.DriverID.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := location.DriverID.Bytes()
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = location
	return nil
}

// Remove evicts a driver's location. Removing an absent entry is not an error.
func (c *LocationCache) Remove(_ context.Context, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := driverID.Bytes()
	if _, exists := c.entries[key]; !exists {
		return nil
	}

	delete(c.entries, key)
	for i, id := range c.order {
		if id == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetAll returns every unexpired location in first-report order.
func (c *LocationCache) GetAll(_ context.Context) ([]ports.DriverLocation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Time{}
	if c.ttl > 0 {
		cutoff = time.Now().Add(-c.ttl)
	}

	locations := make([]ports.DriverLocation, 0, len(c.entries))
	for _, id := range c.order {
		entry, ok := c.entries[id]
		if !ok {
			continue
		}
		if !cutoff.IsZero() && entry.ReportedAt.Before(cutoff) {
			continue
		}
		locations = append(locations, entry)
	}

	return locations, nil
}
