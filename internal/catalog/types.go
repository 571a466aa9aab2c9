// Package catalog holds the domain records of the inventory: games, the
// developers that make them and the genres they belong to. Games hold
// non-owning references to developers and genres by id.
package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

// Developer is a game studio record.
type Developer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	StudioImage string             `bson:"studioImage,omitempty"`
}

// URL is the detail page path for this developer.
func (d Developer) URL() string { return "/developer/" + d.ID.Hex() }

// Genre is a game category record.
type Genre struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	GenreImage string             `bson:"genreImage,omitempty"`
}

// URL is the detail page path for this genre.
func (g Genre) URL() string { return "/genre/" + g.ID.Hex() }

// Game is a catalog entry. Developer references exactly one Developer;
// Genre is modeled as a list even though the form exercises single-select.
type Game struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Title        string               `bson:"title"`
	Summary      string               `bson:"summary"`
	Price        float64              `bson:"price"`
	InStock      int                  `bson:"inStock"`
	Developer    primitive.ObjectID   `bson:"developer"`
	Genre        []primitive.ObjectID `bson:"genre"`
	ProductImage string               `bson:"productImage,omitempty"`
}

// URL is the detail page path for this game.
func (g Game) URL() string { return "/game/" + g.ID.Hex() }
