package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeveloperStore persists Developer records.
type DeveloperStore interface {
	Create(ctx context.Context, d Developer) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Developer, error)
	List(ctx context.Context) ([]*Developer, error)
	// FindByName returns (nil, nil) when no developer has that name.
	FindByName(ctx context.Context, name string) (*Developer, error)
	Update(ctx context.Context, id primitive.ObjectID, d Developer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GenreStore persists Genre records.
type GenreStore interface {
	Create(ctx context.Context, g Genre) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Genre, error)
	List(ctx context.Context) ([]*Genre, error)
	// FindByName returns (nil, nil) when no genre has that name.
	FindByName(ctx context.Context, name string) (*Genre, error)
	Update(ctx context.Context, id primitive.ObjectID, g Genre) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GameStore persists Game records. List is sorted by title ascending.
type GameStore interface {
	Create(ctx context.Context, g Game) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Game, error)
	List(ctx context.Context) ([]*Game, error)
	ListByDeveloper(ctx context.Context, dev primitive.ObjectID) ([]*Game, error)
	ListByGenre(ctx context.Context, genre primitive.ObjectID) ([]*Game, error)
	Update(ctx context.Context, id primitive.ObjectID, g Game) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
