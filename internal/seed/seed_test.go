package seed

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

type memDevelopers struct {
	created []catalog.Developer
}

func (m *memDevelopers) Create(ctx context.Context, d catalog.Developer) (primitive.ObjectID, error) {
	m.created = append(m.created, d)
	return primitive.NewObjectID(), nil
}
func (m *memDevelopers) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Developer, error) {
	return nil, catalog.ErrNotFound
}
func (m *memDevelopers) List(ctx context.Context) ([]*catalog.Developer, error) { return nil, nil }
func (m *memDevelopers) FindByName(ctx context.Context, name string) (*catalog.Developer, error) {
	return nil, nil
}
func (m *memDevelopers) Update(ctx context.Context, id primitive.ObjectID, d catalog.Developer) error {
	return nil
}
func (m *memDevelopers) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type memGenres struct {
	created []catalog.Genre
}

func (m *memGenres) Create(ctx context.Context, g catalog.Genre) (primitive.ObjectID, error) {
	m.created = append(m.created, g)
	return primitive.NewObjectID(), nil
}
func (m *memGenres) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Genre, error) {
	return nil, catalog.ErrNotFound
}
func (m *memGenres) List(ctx context.Context) ([]*catalog.Genre, error) { return nil, nil }
func (m *memGenres) FindByName(ctx context.Context, name string) (*catalog.Genre, error) {
	return nil, nil
}
func (m *memGenres) Update(ctx context.Context, id primitive.ObjectID, g catalog.Genre) error {
	return nil
}
func (m *memGenres) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type memGames struct {
	created []catalog.Game
}

func (m *memGames) Create(ctx context.Context, g catalog.Game) (primitive.ObjectID, error) {
	m.created = append(m.created, g)
	return primitive.NewObjectID(), nil
}
func (m *memGames) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Game, error) {
	return nil, catalog.ErrNotFound
}
func (m *memGames) List(ctx context.Context) ([]*catalog.Game, error) { return nil, nil }
func (m *memGames) ListByDeveloper(ctx context.Context, id primitive.ObjectID) ([]*catalog.Game, error) {
	return nil, nil
}
func (m *memGames) ListByGenre(ctx context.Context, id primitive.ObjectID) ([]*catalog.Game, error) {
	return nil, nil
}
func (m *memGames) Update(ctx context.Context, id primitive.ObjectID, g catalog.Game) error {
	return nil
}
func (m *memGames) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func TestLoad(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Developers) != 6 {
		t.Errorf("developers = %d, want 6", len(f.Developers))
	}
	if len(f.Genres) != 6 {
		t.Errorf("genres = %d, want 6", len(f.Genres))
	}
	if len(f.Games) != 7 {
		t.Errorf("games = %d, want 7", len(f.Games))
	}
}

func TestCheckRefs(t *testing.T) {
	f := &Fixtures{
		Developers: []DeveloperFixture{{Name: "Valve", Description: "Valve Corporation."}},
		Genres:     []GenreFixture{{Name: "Shooter"}},
		Games: []GameFixture{{
			Title: "Half-Life 2", Summary: "FPS.", Price: 9.99, Stock: 1,
			Developer: 1, Genres: []int{0},
		}},
	}
	if err := f.checkRefs(); err == nil {
		t.Error("out-of-range developer index accepted")
	}
	f.Games[0].Developer = 0
	f.Games[0].Genres = []int{3}
	if err := f.checkRefs(); err == nil {
		t.Error("out-of-range genre index accepted")
	}
}

func TestApply(t *testing.T) {
	f, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	devs := &memDevelopers{}
	genres := &memGenres{}
	games := &memGames{}
	res, err := f.Apply(context.Background(), Stores{Developers: devs, Genres: genres, Games: games})
	if err != nil {
		t.Fatal(err)
	}
	if res.Developers != 6 || res.Genres != 6 || res.Games != 7 {
		t.Errorf("result = %+v", res)
	}
	for i, g := range games.created {
		if g.Developer.IsZero() {
			t.Errorf("game %d has zero developer ref", i)
		}
		if len(g.Genre) == 0 {
			t.Errorf("game %d has no genre refs", i)
		}
	}
	// Two fixtures share a developer; the resolved ids must match.
	var tekken, tales catalog.Game
	for _, g := range games.created {
		switch g.Title {
		case "Tekken 7":
			tekken = g
		case "Tales of Arise":
			tales = g
		}
	}
	if tekken.Developer != tales.Developer {
		t.Error("Tekken 7 and Tales of Arise should share a developer id")
	}
}
