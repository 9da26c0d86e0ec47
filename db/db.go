package db

import (
	"context"
	"log"
	_ "net/http/pprof"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is set by Init and stays nil in storeless mode. main uses it
// to disconnect on shutdown.
var Client *mongo.Client

// Init connects to MongoDB using DATABASE_URL and DATABASE_NAME. A
// missing DATABASE_URL is not an error: the backend runs storeless and
// the trip endpoints answer 503 until a store is configured. The driver
// connects lazily, so a configured-but-unreachable database still
// yields a handle; its operations fail and /test reports the error.
func Init(ctx context.Context) (*mongo.Database, error) {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Println("DATABASE_URL not set; running without a store")
		return nil, nil
	}

	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "trippy"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	Client = client
	log.Printf("✅ MongoDB configured (database %q)", name)
	return client.Database(name), nil
}
