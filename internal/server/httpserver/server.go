// Package httpserver is the HTML-facing surface of the catalog. Each
// entity gets the same eight routes (list, detail, create/update/delete
// form + POST); the mutation handlers feed one shared workflow so the
// three entities cannot drift apart.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RustamYuburov/inventory-application/internal/auth"
	"github.com/RustamYuburov/inventory-application/internal/catalog"
)

// ImageStore is the slice of the uploads store the server needs.
type ImageStore interface {
	Accepts(contentType string) bool
	Save(fh *multipart.FileHeader) (string, error)
}

// Config controls the HTTP server.
type Config struct {
	Addr string
	// Release hides error detail on 500 pages and switches gin to
	// release mode.
	Release bool
	// TemplatesDir holds the view templates (*.html).
	TemplatesDir string
	// WatchTemplates reloads templates on change. Dev only.
	WatchTemplates bool
	// PublicDir is the static asset root; uploads live under it.
	PublicDir string
}

// Deps are the collaborators the workflows run against.
type Deps struct {
	Developers catalog.DeveloperStore
	Genres     catalog.GenreStore
	Games      catalog.GameStore
	Authorizer auth.Authorizer
	Images     ImageStore
	Logger     *slog.Logger
}

type Server struct {
	cfg        Config
	log        *slog.Logger
	developers catalog.DeveloperStore
	genres     catalog.GenreStore
	games      catalog.GameStore
	guard      catalog.Guard
	authz      auth.Authorizer
	images     ImageStore
	engine     *gin.Engine
	render     *templateRender
}

func New(cfg Config, deps Deps) (*Server, error) {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:        cfg,
		log:        log,
		developers: deps.Developers,
		genres:     deps.Genres,
		games:      deps.Games,
		guard:      catalog.Guard{Games: deps.Games},
		authz:      deps.Authorizer,
		images:     deps.Images,
		render:     &templateRender{},
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.requestLog())
	if err := s.loadTemplates(); err != nil {
		return nil, err
	}
	s.engine.HTMLRender = s.render
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/", s.home)

	r.GET("/games", s.gameList)
	r.GET("/game/create", s.gameCreateForm)
	r.POST("/game/create", s.gameCreate)
	r.GET("/game/:id", s.gameDetail)
	r.GET("/game/:id/update", s.gameUpdateForm)
	r.POST("/game/:id/update", s.gameUpdate)
	r.GET("/game/:id/delete", s.gameDeleteForm)
	r.POST("/game/:id/delete", s.gameDelete)

	r.GET("/developers", s.developerList)
	r.GET("/developer/create", s.developerCreateForm)
	r.POST("/developer/create", s.developerCreate)
	r.GET("/developer/:id", s.developerDetail)
	r.GET("/developer/:id/update", s.developerUpdateForm)
	r.POST("/developer/:id/update", s.developerUpdate)
	r.GET("/developer/:id/delete", s.developerDeleteForm)
	r.POST("/developer/:id/delete", s.developerDelete)

	r.GET("/genres", s.genreList)
	r.GET("/genre/create", s.genreCreateForm)
	r.POST("/genre/create", s.genreCreate)
	r.GET("/genre/:id", s.genreDetail)
	r.GET("/genre/:id/update", s.genreUpdateForm)
	r.POST("/genre/:id/update", s.genreUpdate)
	r.GET("/genre/:id/delete", s.genreDeleteForm)
	r.POST("/genre/:id/delete", s.genreDelete)

	if s.cfg.PublicDir != "" {
		r.Static("/uploads", filepath.Join(s.cfg.PublicDir, "uploads"))
		r.Static("/static", filepath.Join(s.cfg.PublicDir, "static"))
	}
	r.NoRoute(func(c *gin.Context) { s.renderNotFound(c, "Page not found") })
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.engine}
	if s.cfg.WatchTemplates {
		if err := s.watchTemplates(ctx); err != nil {
			s.log.Warn("template watch disabled", "error", err)
		}
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{"Title": "Homepage"})
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// objectID rejects malformed ids with a 404 before any store access.
func (s *Server) objectID(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := catalog.ParseID(c.Param("id"))
	if err != nil {
		s.renderNotFound(c, "Invalid identifier")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// formImage returns the upload for the named field, or nil when no file
// was sent or the MIME filter rejected it (the original middleware
// silently dropped non-image files, leaving "no file" behavior).
func (s *Server) formImage(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	if !s.images.Accepts(fh.Header.Get("Content-Type")) {
		return nil
	}
	return fh
}

func (s *Server) renderNotFound(c *gin.Context, msg string) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":   "Not Found",
		"Status":  http.StatusNotFound,
		"Message": msg,
	})
}

// fail renders the 500 page; detail is shown only outside release mode.
func (s *Server) fail(c *gin.Context, err error) {
	s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
	detail := ""
	if !s.cfg.Release {
		detail = err.Error()
	}
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   "Error",
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong",
		"Detail":  detail,
	})
}

// getFail maps a failed store read to 404 or 500.
func (s *Server) getFail(c *gin.Context, err error, what string) {
	if errors.Is(err, catalog.ErrNotFound) {
		s.renderNotFound(c, what+" not found")
		return
	}
	s.fail(c, err)
}
