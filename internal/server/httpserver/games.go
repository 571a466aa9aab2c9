package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
	"github.com/RustamYuburov/inventory-application/internal/forms"
)

func (s *Server) gameList(c *gin.Context) {
	games, err := s.games.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "game_list", gin.H{
		"Title": "Games",
		"Games": games,
	})
}

func (s *Server) gameDetail(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	game, err := s.games.Get(ctx, id)
	if err != nil {
		s.getFail(c, err, "Game")
		return
	}
	// Referenced records can be missing after an out-of-band delete;
	// render what is there instead of failing the page.
	var dev *catalog.Developer
	if d, err := s.developers.Get(ctx, game.Developer); err == nil {
		dev = d
	} else if !errors.Is(err, catalog.ErrNotFound) {
		s.fail(c, err)
		return
	}
	genres := make([]*catalog.Genre, 0, len(game.Genre))
	for _, gid := range game.Genre {
		g, err := s.genres.Get(ctx, gid)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			s.fail(c, err)
			return
		}
		genres = append(genres, g)
	}
	c.HTML(http.StatusOK, "game_detail", gin.H{
		"Title":     game.Title,
		"Game":      game,
		"Developer": dev,
		"Genres":    genres,
	})
}

// renderGameForm re-loads the developer and genre lists so the selects
// stay populated on re-render.
func (s *Server) renderGameForm(c *gin.Context, title, formType string, form gameFormData, errs []forms.FieldError, flash string) {
	ctx := c.Request.Context()
	devs, err := s.developers.List(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}
	genres, err := s.genres.List(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "game_form", gin.H{
		"Title":      title,
		"Type":       formType,
		"Form":       form,
		"Developers": devs,
		"Genres":     genres,
		"Errors":     errs,
		"Error":      flash,
	})
}

func (s *Server) gameCreateForm(c *gin.Context) {
	s.renderGameForm(c, "Add New Game", "create", gameFormData{}, nil, "")
}

func (s *Server) gameCreate(c *gin.Context) {
	cand, errs := forms.ValidateGame(gameFormInput(c))
	s.runCreate(c, errs, createFlow{
		image:      s.formImage(c, "game_image"),
		missingMsg: "Image is required to create a new game!",
		render: func(c *gin.Context, errs []forms.FieldError, flash string) {
			s.renderGameForm(c, "Add New Game", "create", gameFormFromCandidate(cand), errs, flash)
		},
		create: func(ctx context.Context, imagePath string) (string, error) {
			game, err := gameFromCandidate(cand)
			if err != nil {
				return "", err
			}
			game.ProductImage = imagePath
			id, err := s.games.Create(ctx, game)
			if err != nil {
				return "", err
			}
			return catalog.Game{ID: id}.URL(), nil
		},
	})
}

func (s *Server) gameUpdateForm(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	game, err := s.games.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Game")
		return
	}
	s.renderGameForm(c, "Update "+game.Title+" info", "update", gameFormFromGame(game), nil, "")
}

func (s *Server) gameUpdate(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	cand, errs := forms.ValidateGame(gameFormInput(c))
	s.runUpdate(c, errs, updateFlow{
		what:       "Game",
		password:   c.PostForm("password"),
		authMsg:    "The password you entered is invalid",
		image:      s.formImage(c, "game_image"),
		missingMsg: "Image is required to update a game!",
		render: func(c *gin.Context, errs []forms.FieldError, flash string) {
			s.renderGameForm(c, "Update "+cand.Title+" info", "update", gameFormFromCandidate(cand), errs, flash)
		},
		update: func(ctx context.Context, imagePath string) (string, error) {
			game, err := gameFromCandidate(cand)
			if err != nil {
				return "", err
			}
			game.ProductImage = imagePath
			if err := s.games.Update(ctx, id, game); err != nil {
				return "", err
			}
			return catalog.Game{ID: id}.URL(), nil
		},
	})
}

func (s *Server) gameDeleteForm(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	game, err := s.games.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Game")
		return
	}
	c.HTML(http.StatusOK, "game_delete", gin.H{
		"Title": "Delete " + game.Title,
		"Game":  game,
	})
}

// gameDelete has no reference guard: nothing in the catalog points at a
// game.
func (s *Server) gameDelete(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	game, err := s.games.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Game")
		return
	}
	s.runDelete(c, deleteFlow{
		what:     "Game",
		password: c.PostForm("password"),
		render: func(c *gin.Context, authErr string) {
			c.HTML(http.StatusOK, "game_delete", gin.H{
				"Title": "Delete " + game.Title,
				"Game":  game,
				"Error": authErr,
			})
		},
		remove: func(ctx context.Context) error {
			return s.games.Delete(ctx, id)
		},
		list: "/games",
	})
}

func gameFormInput(c *gin.Context) forms.GameForm {
	return forms.GameForm{
		Title:     c.PostForm("title"),
		Developer: c.PostForm("developer"),
		Summary:   c.PostForm("summary"),
		Genre:     c.PostFormArray("genre"),
		Price:     c.PostForm("price"),
		Stock:     c.PostForm("stock"),
	}
}

// gameFromCandidate turns a validated submission into a record. The
// developer and genre fields hold ids picked from rendered selects, so a
// malformed one is a server error, not a user error.
func gameFromCandidate(cand forms.GameCandidate) (catalog.Game, error) {
	dev, err := catalog.ParseID(cand.Developer)
	if err != nil {
		return catalog.Game{}, err
	}
	genres := make([]primitive.ObjectID, len(cand.Genre))
	for i, g := range cand.Genre {
		id, err := catalog.ParseID(g)
		if err != nil {
			return catalog.Game{}, err
		}
		genres[i] = id
	}
	return catalog.Game{
		Title:     cand.Title,
		Summary:   cand.Summary,
		Price:     cand.PriceValue,
		InStock:   cand.StockValue,
		Developer: dev,
		Genre:     genres,
	}, nil
}
