package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

// Developers is the mongo-backed catalog.DeveloperStore.
type Developers struct {
	c *mongo.Collection
}

func NewDevelopers(db *mongo.Database) *Developers {
	return &Developers{c: db.Collection(developersCollection)}
}

func (s *Developers) Create(ctx context.Context, d catalog.Developer) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, d)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Developers) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Developer, error) {
	var d catalog.Developer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, mapFindErr(err)
	}
	return &d, nil
}

func (s *Developers) List(ctx context.Context) ([]*catalog.Developer, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]*catalog.Developer, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Developers) FindByName(ctx context.Context, name string) (*catalog.Developer, error) {
	var d catalog.Developer
	err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Developers) Update(ctx context.Context, id primitive.ObjectID, d catalog.Developer) error {
	d.ID = id
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, d)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Developers) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
