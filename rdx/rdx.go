package rdx

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Conn stays nil when REDIS_URL is not set. Publishers must check it
// before use; trip events are best-effort.
var Conn *redis.Client

// Init connects to Redis when REDIS_URL is set. Like the Mongo
// bootstrap it is optional: without it the backend still serves every
// endpoint, it just emits no events.
func Init() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set; trip events disabled")
		return
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"), // Empty if no password
		DB:       0,                           // Default DB
	})
}
