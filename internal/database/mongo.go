package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	SlidersCollection    = "Sliders"
	PropertiesCollection = "Properties"
	ReviewsCollection    = "Reviews"
)

// Database is the single long-lived session shared by every repository.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client with the Stable API v1 in strict mode and pings
// the server. A failed ping is returned so the caller can refuse to start.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Database{client: client, db: client.Database(dbName)}, nil
}

func (d *Database) Name() string {
	return d.db.Name()
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping checks that the server is still reachable.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
