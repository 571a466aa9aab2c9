package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
	"github.com/RustamYuburov/inventory-application/internal/forms"
)

func (s *Server) genreList(c *gin.Context) {
	genres, err := s.genres.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "genre_list", gin.H{
		"Title":  "Genres",
		"Genres": genres,
	})
}

func (s *Server) genreDetail(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	genre, err := s.genres.Get(ctx, id)
	if err != nil {
		s.getFail(c, err, "Genre")
		return
	}
	games, err := s.games.ListByGenre(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"Title": genre.Name,
		"Genre": genre,
		"Games": games,
	})
}

func (s *Server) renderGenreForm(c *gin.Context, title, formType string, form genreFormData, errs []forms.FieldError, flash string) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"Title":  title,
		"Type":   formType,
		"Form":   form,
		"Errors": errs,
		"Error":  flash,
	})
}

func (s *Server) genreCreateForm(c *gin.Context) {
	s.renderGenreForm(c, "Add New Genre", "create", genreFormData{}, nil, "")
}

func (s *Server) genreCreate(c *gin.Context) {
	cand, errs := forms.ValidateGenre(forms.GenreForm{Name: c.PostForm("name")})
	s.runCreate(c, errs, createFlow{
		image:      s.formImage(c, "genre_image"),
		missingMsg: "Image is required to create a new genre!",
		render: func(c *gin.Context, errs []forms.FieldError, flash string) {
			s.renderGenreForm(c, "Add New Genre", "create", genreFormData(cand), errs, flash)
		},
		existing: func(ctx context.Context) (string, error) {
			found, err := s.genres.FindByName(ctx, cand.Name)
			if err != nil {
				return "", err
			}
			if found != nil {
				return found.URL(), nil
			}
			return "", nil
		},
		create: func(ctx context.Context, imagePath string) (string, error) {
			id, err := s.genres.Create(ctx, catalog.Genre{
				Name:       cand.Name,
				GenreImage: imagePath,
			})
			if err != nil {
				return "", err
			}
			return catalog.Genre{ID: id}.URL(), nil
		},
	})
}

func (s *Server) genreUpdateForm(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	genre, err := s.genres.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Genre")
		return
	}
	s.renderGenreForm(c, "Update "+genre.Name+" info", "update", genreFormData{Name: genre.Name}, nil, "")
}

func (s *Server) genreUpdate(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	cand, errs := forms.ValidateGenre(forms.GenreForm{Name: c.PostForm("name")})
	s.runUpdate(c, errs, updateFlow{
		what:       "Genre",
		password:   c.PostForm("password"),
		authMsg:    "The password you entered is invalid",
		image:      s.formImage(c, "genre_image"),
		missingMsg: "Image is required to update a genre!",
		render: func(c *gin.Context, errs []forms.FieldError, flash string) {
			s.renderGenreForm(c, "Update "+cand.Name+" info", "update", genreFormData(cand), errs, flash)
		},
		update: func(ctx context.Context, imagePath string) (string, error) {
			err := s.genres.Update(ctx, id, catalog.Genre{
				Name:       cand.Name,
				GenreImage: imagePath,
			})
			if err != nil {
				return "", err
			}
			return catalog.Genre{ID: id}.URL(), nil
		},
	})
}

func (s *Server) genreDeleteForm(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	genre, err := s.genres.Get(ctx, id)
	// Nothing to confirm for a record that is already gone.
	if errors.Is(err, catalog.ErrNotFound) {
		c.Redirect(http.StatusFound, "/genres")
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	games, err := s.guard.BlockingGamesForGenre(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "genre_delete", gin.H{
		"Title": "Delete " + genre.Name,
		"Genre": genre,
		"Games": games,
	})
}

func (s *Server) genreDelete(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	genre, err := s.genres.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Genre")
		return
	}
	s.runDelete(c, deleteFlow{
		what:     "Genre",
		password: c.PostForm("password"),
		blocked: func(ctx context.Context) (bool, error) {
			games, err := s.guard.BlockingGamesForGenre(ctx, id)
			if err != nil {
				return false, err
			}
			if len(games) == 0 {
				return false, nil
			}
			c.HTML(http.StatusOK, "genre_delete", gin.H{
				"Title": "Delete " + genre.Name,
				"Genre": genre,
				"Games": games,
			})
			return true, nil
		},
		render: func(c *gin.Context, authErr string) {
			c.HTML(http.StatusOK, "genre_delete", gin.H{
				"Title": "Delete " + genre.Name,
				"Genre": genre,
				"Games": []*catalog.Game{},
				"Error": authErr,
			})
		},
		remove: func(ctx context.Context) error {
			return s.genres.Delete(ctx, id)
		},
		list: "/genres",
	})
}
