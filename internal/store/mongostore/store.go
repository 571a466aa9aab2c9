// Package mongostore implements the catalog stores on MongoDB, one
// collection per record type.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

const (
	developersCollection = "developers"
	genresCollection     = "genres"
	gamesCollection      = "games"
)

// Open connects to the database and verifies the connection with a ping.
func Open(ctx context.Context, uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(database), nil
}

// mapFindErr translates driver errors on single-document reads.
func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return catalog.ErrNotFound
	}
	return err
}
