package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the client behind the pending order and access token
// stores. A failed ping is logged, not fatal: go-redis reconnects on demand.
func ConnectRedis(ctx context.Context, addr, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[cache][redis] warning: could not connect addr=%s err=%v", addr, err)
	} else {
		log.Printf("[cache][redis] connected addr=%s", addr)
	}
	return client
}
