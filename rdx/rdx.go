package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client. Nil when Redis is unreachable; callers
// must treat it as optional infrastructure.
var Conn *redis.Client

// Init dials Redis using REDIS_ADDR. The portal works without Redis (events
// fall back to in-process delivery), so a failed ping only logs.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("redis unavailable:", err)
		return
	}
	Conn = client
}

// Close releases the client during shutdown.
func Close() {
	if Conn == nil {
		return
	}
	if err := Conn.Close(); err != nil {
		log.Println("redis close:", err)
	}
}
