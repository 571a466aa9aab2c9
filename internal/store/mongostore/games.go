package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

// Games is the mongo-backed catalog.GameStore.
type Games struct {
	c *mongo.Collection
}

func NewGames(db *mongo.Database) *Games {
	return &Games{c: db.Collection(gamesCollection)}
}

func (s *Games) Create(ctx context.Context, g catalog.Game) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, g)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Games) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Game, error) {
	var g catalog.Game
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return nil, mapFindErr(err)
	}
	return &g, nil
}

// List returns all games sorted by title ascending.
func (s *Games) List(ctx context.Context) ([]*catalog.Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	return s.find(ctx, bson.M{}, opts)
}

func (s *Games) ListByDeveloper(ctx context.Context, dev primitive.ObjectID) ([]*catalog.Game, error) {
	return s.find(ctx, bson.M{"developer": dev}, nil)
}

// ListByGenre matches array membership: a game referencing the genre in
// any position of its genre list counts.
func (s *Games) ListByGenre(ctx context.Context, genre primitive.ObjectID) ([]*catalog.Game, error) {
	return s.find(ctx, bson.M{"genre": genre}, nil)
}

func (s *Games) Update(ctx context.Context, id primitive.ObjectID, g catalog.Game) error {
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

func (s *Games) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Games) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*catalog.Game, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = s.c.Find(ctx, filter, opts)
	} else {
		cur, err = s.c.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*catalog.Game, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
