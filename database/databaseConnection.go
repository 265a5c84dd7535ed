package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DefaultRetries = 5
	maxRetryDelay  = 10 * time.Second
)

const (
	UserCollection         = "user"
	MenuCollection         = "menu"
	ComboCollection        = "combo"
	OrderCollection        = "order"
	ReviewCollection       = "review"
	NotificationCollection = "notification"
)

// RetryDelay is the pause after a failed attempt: 1s, 2s, 4s, 8s, then capped at 10s.
func RetryDelay(attempt int) time.Duration {
	d := time.Second << uint(attempt)
	if d > maxRetryDelay || d <= 0 {
		return maxRetryDelay
	}
	return d
}

// DBinstance connects and pings MongoDB, retrying with exponential backoff.
func DBinstance(ctx context.Context, uri string, retries int) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is not set")
	}
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second)

	var lastErr error
	for i := 0; i < retries; i++ {
		log.Println("Attempting to connect to MongoDB...")
		client, err := connectOnce(ctx, opts)
		if err == nil {
			log.Println("Connected to MongoDB successfully")
			return client, nil
		}
		lastErr = err
		log.Printf("MongoDB connection attempt %d failed: %v", i+1, err)
		if i == retries-1 {
			break
		}
		wait := RetryDelay(i)
		log.Printf("Waiting %s before next attempt...", wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("all %d connection attempts failed: %w", retries, lastErr)
}

func connectOnce(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func OpenCollection(db *mongo.Database, collectionName string) *mongo.Collection {
	return db.Collection(collectionName)
}

// Pinger checks the primary is reachable; used by the health endpoint.
type Pinger struct {
	Client *mongo.Client
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}
