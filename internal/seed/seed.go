// Package seed loads the built-in catalog fixtures into a store. The
// fixture file references developers and genres by position, so inserts
// run as one ordered sequence per invocation; nothing here is global
// state.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

//go:embed fixtures.json
var fixturesJSON []byte

//go:embed schema.json
var schemaJSON []byte

// Fixtures is the parsed fixture file. Game entries point at developers
// and genres by index into the sibling lists.
type Fixtures struct {
	Developers []DeveloperFixture `json:"developers"`
	Genres     []GenreFixture     `json:"genres"`
	Games      []GameFixture      `json:"games"`
}

type DeveloperFixture struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GenreFixture struct {
	Name string `json:"name"`
}

type GameFixture struct {
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Developer int     `json:"developer"`
	Genres    []int   `json:"genres"`
}

// Stores are the targets the fixtures are written to.
type Stores struct {
	Developers catalog.DeveloperStore
	Genres     catalog.GenreStore
	Games      catalog.GameStore
}

// Result reports what one Apply run created.
type Result struct {
	Developers int
	Genres     int
	Games      int
}

// Load parses and schema-checks the embedded fixtures.
func Load() (*Fixtures, error) {
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(fixturesJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("validate fixtures: %w", err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("fixtures do not match schema: %v", res.Errors())
	}
	var f Fixtures
	if err := json.Unmarshal(fixturesJSON, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := f.checkRefs(); err != nil {
		return nil, err
	}
	return &f, nil
}

// checkRefs rejects game entries pointing outside the fixture lists. The
// schema cannot express this.
func (f *Fixtures) checkRefs() error {
	for _, g := range f.Games {
		if g.Developer < 0 || g.Developer >= len(f.Developers) {
			return fmt.Errorf("game %q: developer index %d out of range", g.Title, g.Developer)
		}
		for _, gi := range g.Genres {
			if gi < 0 || gi >= len(f.Genres) {
				return fmt.Errorf("game %q: genre index %d out of range", g.Title, gi)
			}
		}
	}
	return nil
}

// Apply inserts the fixtures in order: developers, genres, then games
// with their references resolved to the ids just created. Existing
// records are left alone; the run only ever adds.
func (f *Fixtures) Apply(ctx context.Context, st Stores) (Result, error) {
	var res Result
	devIDs := make([]primitive.ObjectID, len(f.Developers))
	for i, d := range f.Developers {
		id, err := st.Developers.Create(ctx, catalog.Developer{
			Name:        d.Name,
			Description: d.Description,
		})
		if err != nil {
			return res, fmt.Errorf("create developer %q: %w", d.Name, err)
		}
		devIDs[i] = id
		res.Developers++
	}
	genreIDs := make([]primitive.ObjectID, len(f.Genres))
	for i, g := range f.Genres {
		id, err := st.Genres.Create(ctx, catalog.Genre{Name: g.Name})
		if err != nil {
			return res, fmt.Errorf("create genre %q: %w", g.Name, err)
		}
		genreIDs[i] = id
		res.Genres++
	}
	for _, g := range f.Games {
		genres := make([]primitive.ObjectID, len(g.Genres))
		for i, gi := range g.Genres {
			genres[i] = genreIDs[gi]
		}
		_, err := st.Games.Create(ctx, catalog.Game{
			Title:     g.Title,
			Summary:   g.Summary,
			Price:     g.Price,
			InStock:   g.Stock,
			Developer: devIDs[g.Developer],
			Genre:     genres,
		})
		if err != nil {
			return res, fmt.Errorf("create game %q: %w", g.Title, err)
		}
		res.Games++
	}
	return res, nil
}
