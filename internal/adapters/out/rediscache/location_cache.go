// Package rediscache implements the live location cache on Redis. Each
// driver's last reported position is stored under its own key with a TTL,
// so drivers that stop reporting age out of the dashboard map without any
// eviction bookkeeping.
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "driver:location:"

// locationDTO is the stored JSON representation of a live location.
type locationDTO struct {
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ReportedAt time.Time `json:"reported_at"`
}

// LocationCache implements ports.LocationCache on a Redis client.
type LocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocationCache creates a cache over the given client. Entries expire
// ttl after their last Set; a ttl of zero keeps them forever.
func NewLocationCache(client *redis.Client, ttl time.Duration) *LocationCache {
	return &LocationCache{
		client: client,
		ttl:    ttl,
	}
}

// Set stores or refreshes a driver's live location, resetting its TTL.
func (c *LocationCache) Set(ctx context.Context, location ports.DriverLocation) error {
	if err := location.DriverID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(locationDTO{
		DriverID:   location.DriverID.String(),
		Latitude:   location.Location.Latitude(),
		Longitude:  location.Location.Longitude(),
		ReportedAt: location.ReportedAt,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, keyPrefix+location.DriverID.String(), payload, c.ttl).Err()
}

// Remove evicts a driver's location. Removing an absent entry is not an error.
func (c *LocationCache) Remove(ctx context.Context, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	return c.client.Del(ctx, keyPrefix+driverID.String()).Err()
}

// GetAll returns every live location currently in the cache. Entries that
// expire between the scan and the read are skipped.
func (c *LocationCache) GetAll(ctx context.Context) ([]ports.DriverLocation, error) {
	var locations []ports.DriverLocation

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		payload, err := c.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}

		var dto locationDTO
		if err := json.Unmarshal(payload, &dto); err != nil {
			return nil, err
		}

		location, err := toDriverLocation(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func toDriverLocation(dto locationDTO) (ports.DriverLocation, error) {
	driverID, err := kernel.UUIDFromString(dto.DriverID)
	if err != nil {
		return ports.DriverLocation{}, err
	}

	geolocation, err := kernel.NewGeolocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return ports.DriverLocation{}, err
	}

	return ports.DriverLocation{
		DriverID:   driverID,
		Location:   geolocation,
		ReportedAt: dto.ReportedAt,
	}, nil
}
