package cache

import (
	"context"
	"encoding/json"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const flightsKey = "cache:flights"

// RedisCache holds the flight catalog list between reads. The catalog
// changes only on admin create/delete and on seat decrements, so every
// writer invalidates the key.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg utils.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

// GetFlights returns the cached list or (nil, nil) on a miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]*entity.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []*entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []*entity.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.ttl).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey).Err()
}
