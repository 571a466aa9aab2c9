package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guard blocks deletion of developers and genres that are still referenced
// by games. It runs a reverse lookup per delete attempt; fine at catalog
// scale. There is no lock between the check and the delete, so a
// concurrent game create can slip a new reference in; single-admin usage
// makes that window acceptable.
type Guard struct {
	Games GameStore
}

// BlockingGamesForDeveloper returns the games that reference the developer.
// An empty result means the developer is safe to delete.
func (g Guard) BlockingGamesForDeveloper(ctx context.Context, id primitive.ObjectID) ([]*Game, error) {
	return g.Games.ListByDeveloper(ctx, id)
}

// BlockingGamesForGenre returns the games that reference the genre.
func (g Guard) BlockingGamesForGenre(ctx context.Context, id primitive.ObjectID) ([]*Game, error) {
	return g.Games.ListByGenre(ctx, id)
}
