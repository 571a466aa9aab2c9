package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RustamYuburov/inventory-application/internal/auth"
	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

const testPass = "secretadminpass"

// In-memory stores. calls counts every store method invocation so tests
// can assert that malformed-id requests never reach the store.

type memDevelopers struct {
	calls int
	items map[primitive.ObjectID]catalog.Developer
}

func newMemDevelopers() *memDevelopers {
	return &memDevelopers{items: map[primitive.ObjectID]catalog.Developer{}}
}

func (m *memDevelopers) Create(ctx context.Context, d catalog.Developer) (primitive.ObjectID, error) {
	m.calls++
	d.ID = primitive.NewObjectID()
	m.items[d.ID] = d
	return d.ID, nil
}

func (m *memDevelopers) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Developer, error) {
	m.calls++
	d, ok := m.items[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &d, nil
}

func (m *memDevelopers) List(ctx context.Context) ([]*catalog.Developer, error) {
	m.calls++
	out := make([]*catalog.Developer, 0, len(m.items))
	for id := range m.items {
		d := m.items[id]
		out = append(out, &d)
	}
	return out, nil
}

func (m *memDevelopers) FindByName(ctx context.Context, name string) (*catalog.Developer, error) {
	m.calls++
	for id := range m.items {
		if m.items[id].Name == name {
			d := m.items[id]
			return &d, nil
		}
	}
	return nil, nil
}

func (m *memDevelopers) Update(ctx context.Context, id primitive.ObjectID, d catalog.Developer) error {
	m.calls++
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	d.ID = id
	m.items[id] = d
	return nil
}

func (m *memDevelopers) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.calls++
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memGenres struct {
	calls int
	items map[primitive.ObjectID]catalog.Genre
}

func newMemGenres() *memGenres {
	return &memGenres{items: map[primitive.ObjectID]catalog.Genre{}}
}

func (m *memGenres) Create(ctx context.Context, g catalog.Genre) (primitive.ObjectID, error) {
	m.calls++
	g.ID = primitive.NewObjectID()
	m.items[g.ID] = g
	return g.ID, nil
}

func (m *memGenres) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Genre, error) {
	m.calls++
	g, ok := m.items[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &g, nil
}

func (m *memGenres) List(ctx context.Context) ([]*catalog.Genre, error) {
	m.calls++
	out := make([]*catalog.Genre, 0, len(m.items))
	for id := range m.items {
		g := m.items[id]
		out = append(out, &g)
	}
	return out, nil
}

func (m *memGenres) FindByName(ctx context.Context, name string) (*catalog.Genre, error) {
	m.calls++
	for id := range m.items {
		if m.items[id].Name == name {
			g := m.items[id]
			return &g, nil
		}
	}
	return nil, nil
}

func (m *memGenres) Update(ctx context.Context, id primitive.ObjectID, g catalog.Genre) error {
	m.calls++
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	g.ID = id
	m.items[id] = g
	return nil
}

func (m *memGenres) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.calls++
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memGames struct {
	calls int
	items map[primitive.ObjectID]catalog.Game
}

func newMemGames() *memGames {
	return &memGames{items: map[primitive.ObjectID]catalog.Game{}}
}

func (m *memGames) Create(ctx context.Context, g catalog.Game) (primitive.ObjectID, error) {
	m.calls++
	g.ID = primitive.NewObjectID()
	m.items[g.ID] = g
	return g.ID, nil
}

func (m *memGames) Get(ctx context.Context, id primitive.ObjectID) (*catalog.Game, error) {
	m.calls++
	g, ok := m.items[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &g, nil
}

func (m *memGames) List(ctx context.Context) ([]*catalog.Game, error) {
	m.calls++
	out := make([]*catalog.Game, 0, len(m.items))
	for id := range m.items {
		g := m.items[id]
		out = append(out, &g)
	}
	return out, nil
}

func (m *memGames) ListByDeveloper(ctx context.Context, dev primitive.ObjectID) ([]*catalog.Game, error) {
	m.calls++
	var out []*catalog.Game
	for id := range m.items {
		if m.items[id].Developer == dev {
			g := m.items[id]
			out = append(out, &g)
		}
	}
	return out, nil
}

func (m *memGames) ListByGenre(ctx context.Context, genre primitive.ObjectID) ([]*catalog.Game, error) {
	m.calls++
	var out []*catalog.Game
	for id := range m.items {
		for _, g := range m.items[id].Genre {
			if g == genre {
				game := m.items[id]
				out = append(out, &game)
				break
			}
		}
	}
	return out, nil
}

func (m *memGames) Update(ctx context.Context, id primitive.ObjectID, g catalog.Game) error {
	m.calls++
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	g.ID = id
	m.items[id] = g
	return nil
}

func (m *memGames) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.calls++
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type fakeImages struct {
	saves int
}

func (f *fakeImages) Accepts(contentType string) bool {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

func (f *fakeImages) Save(fh *multipart.FileHeader) (string, error) {
	f.saves++
	return "/uploads/fake-" + fh.Filename, nil
}

// env wires a server around the in-memory fakes and the real templates.
type env struct {
	devs   *memDevelopers
	genres *memGenres
	games  *memGames
	images *fakeImages
	srv    *Server
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := &env{
		devs:   newMemDevelopers(),
		genres: newMemGenres(),
		games:  newMemGames(),
		images: &fakeImages{},
	}
	srv, err := New(Config{
		TemplatesDir: "../../../web/templates",
	}, Deps{
		Developers: e.devs,
		Genres:     e.genres,
		Games:      e.games,
		Authorizer: auth.NewSharedSecret(testPass),
		Images:     e.images,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	e.srv = srv
	return e
}

func (e *env) storeCalls() int {
	return e.devs.calls + e.genres.calls + e.games.calls
}

func (e *env) addDeveloper(name, desc string) primitive.ObjectID {
	id, _ := e.devs.Create(context.Background(), catalog.Developer{Name: name, Description: desc})
	e.devs.calls = 0
	return id
}

func (e *env) addGenre(name string) primitive.ObjectID {
	id, _ := e.genres.Create(context.Background(), catalog.Genre{Name: name})
	e.genres.calls = 0
	return id
}

func (e *env) addGame(title string, dev primitive.ObjectID, genres ...primitive.ObjectID) primitive.ObjectID {
	id, _ := e.games.Create(context.Background(), catalog.Game{
		Title:     title,
		Summary:   "A game.",
		Price:     9.99,
		InStock:   10,
		Developer: dev,
		Genre:     genres,
	})
	e.games.calls = 0
	return id
}

func (e *env) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

// postForm submits a multipart form. fileField == "" sends no file.
func (e *env) postForm(t *testing.T, path string, fields url.Values, fileField, fileName, fileType string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		h.Set("Content-Type", fileType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func gameFields(dev, genre primitive.ObjectID) url.Values {
	return url.Values{
		"title":     {"Hollow Knight"},
		"developer": {dev.Hex()},
		"summary":   {"A challenging action adventure."},
		"genre":     {genre.Hex()},
		"price":     {"9.99"},
		"stock":     {"900"},
	}
}
