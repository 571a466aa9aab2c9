package mongostore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

// Integration test; runs only when MONGO_TEST_URI points at a live
// server, e.g. MONGO_TEST_URI=mongodb://localhost:27017 go test ./...
func testDB(t *testing.T) (context.Context, *Developers, *Genres, *Games) {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	db, err := Open(ctx, uri, "inventory_test_"+primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.Drop(context.Background())
		db.Client().Disconnect(context.Background())
	})
	return ctx, NewDevelopers(db), NewGenres(db), NewGames(db)
}

func TestDeveloperRoundTrip(t *testing.T) {
	ctx, devs, _, _ := testDB(t)

	id, err := devs.Create(ctx, catalog.Developer{Name: "Valve", Description: "Valve Corporation."})
	if err != nil {
		t.Fatal(err)
	}
	got, err := devs.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Valve" || got.ID != id {
		t.Errorf("got %+v", got)
	}

	found, err := devs.FindByName(ctx, "Valve")
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.ID != id {
		t.Errorf("FindByName = %+v", found)
	}
	absent, err := devs.FindByName(ctx, "Nobody")
	if err != nil {
		t.Fatal(err)
	}
	if absent != nil {
		t.Errorf("FindByName(absent) = %+v, want nil", absent)
	}

	if err := devs.Update(ctx, id, catalog.Developer{Name: "Valve Software", Description: "Renamed."}); err != nil {
		t.Fatal(err)
	}
	got, err = devs.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Valve Software" {
		t.Errorf("after update: %+v", got)
	}

	if err := devs.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := devs.Get(ctx, id); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Get deleted = %v, want ErrNotFound", err)
	}
	if err := devs.Delete(ctx, id); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestGameListSortedByTitle(t *testing.T) {
	ctx, _, _, games := testDB(t)

	dev := primitive.NewObjectID()
	for _, title := range []string{"Tekken 7", "Forza Horizon 4", "Hollow Knight"} {
		if _, err := games.Create(ctx, catalog.Game{Title: title, Summary: "x", Developer: dev}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := games.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Forza Horizon 4", "Hollow Knight", "Tekken 7"}
	if len(list) != len(want) {
		t.Fatalf("got %d games", len(list))
	}
	for i, g := range list {
		if g.Title != want[i] {
			t.Errorf("list[%d] = %q, want %q", i, g.Title, want[i])
		}
	}
}

func TestGameReverseLookups(t *testing.T) {
	ctx, _, _, games := testDB(t)

	dev := primitive.NewObjectID()
	other := primitive.NewObjectID()
	genre := primitive.NewObjectID()

	if _, err := games.Create(ctx, catalog.Game{Title: "A", Summary: "x", Developer: dev, Genre: []primitive.ObjectID{genre, other}}); err != nil {
		t.Fatal(err)
	}
	if _, err := games.Create(ctx, catalog.Game{Title: "B", Summary: "x", Developer: other}); err != nil {
		t.Fatal(err)
	}

	byDev, err := games.ListByDeveloper(ctx, dev)
	if err != nil {
		t.Fatal(err)
	}
	if len(byDev) != 1 || byDev[0].Title != "A" {
		t.Errorf("ListByDeveloper = %+v", byDev)
	}

	// Membership in any position of the genre array must match.
	byGenre, err := games.ListByGenre(ctx, genre)
	if err != nil {
		t.Fatal(err)
	}
	if len(byGenre) != 1 || byGenre[0].Title != "A" {
		t.Errorf("ListByGenre = %+v", byGenre)
	}

	none, err := games.ListByGenre(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("ListByGenre(unused) = %+v", none)
	}
}
