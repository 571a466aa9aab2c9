package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

// Genres is the mongo-backed catalog.GenreStore.
type Genres struct {
	c *mongo.Collection
}

func NewGenres(db *mongo.Database) *Genres {
	return &Genres{c: db.Collection(genresCollection)}
}

func (s *Genres) Create(ctx context.Context, g catalog.Genre) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, g)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Genres) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Genre, error) {
	var g catalog.Genre
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return nil, mapFindErr(err)
	}
	return &g, nil
}

func (s *Genres) List(ctx context.Context) ([]*catalog.Genre, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]*catalog.Genre, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Genres) FindByName(ctx context.Context, name string) (*catalog.Genre, error) {
	var g catalog.Genre
	err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Genres) Update(ctx context.Context, id primitive.ObjectID, g catalog.Genre) error {
	g.ID = id
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, g)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Genres) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
