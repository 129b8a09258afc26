// Package db contains the MongoDB users collection and every mutation
// the app performs against it
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// New connects to the configured MongoDB deployment and returns a store
// over the users collection. The connection is pinged so a bad URI fails
// at startup instead of on the first request.
func New() (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(viper.GetString("db.uri")))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client, %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to reach MongoDB, %w", err)
	}

	return &Store{
		client: client,
		users:  client.Database(viper.GetString("db.name")).Collection("users"),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
