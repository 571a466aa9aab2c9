package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RustamYuburov/inventory-application/internal/catalog"
	"github.com/RustamYuburov/inventory-application/internal/forms"
)

func (s *Server) developerList(c *gin.Context) {
	devs, err := s.developers.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "developer_list", gin.H{
		"Title":      "Developers",
		"Developers": devs,
	})
}

func (s *Server) developerDetail(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	dev, err := s.developers.Get(ctx, id)
	if err != nil {
		s.getFail(c, err, "Developer")
		return
	}
	games, err := s.games.ListByDeveloper(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "developer_detail", gin.H{
		"Title":     dev.Name,
		"Developer": dev,
		"Games":     games,
	})
}

func (s *Server) renderDeveloperForm(c *gin.Context, title, formType string, form developerFormData, errs []forms.FieldError, flash string) {
	c.HTML(http.StatusOK, "developer_form", gin.H{
		"Title":  title,
		"Type":   formType,
		"Form":   form,
		"Errors": errs,
		"Error":  flash,
	})
}

func (s *Server) developerCreateForm(c *gin.Context) {
	s.renderDeveloperForm(c, "Add New Developer", "create", developerFormData{}, nil, "")
}

func (s *Server) developerCreate(c *gin.Context) {
	cand, errs := forms.ValidateDeveloper(forms.DeveloperForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	})
	s.runCreate(c, errs, createFlow{
		image:      s.formImage(c, "developer_image"),
		missingMsg: "Image is required to create a new developer!",
		render: func(c *gin.Context, errs []forms.FieldError, flash string) {
			s.renderDeveloperForm(c, "Add New Developer", "create", developerFormData(cand), errs, flash)
		},
		existing: func(ctx context.Context) (string, error) {
			found, err := s.developers.FindByName(ctx, cand.Name)
			if err != nil {
				return "", err
			}
			if found != nil {
				return found.URL(), nil
			}
			return "", nil
		},
		create: func(ctx context.Context, imagePath string) (string, error) {
			id, err := s.developers.Create(ctx, catalog.Developer{
				Name:        cand.Name,
				Description: cand.Description,
				StudioImage: imagePath,
			})
			if err != nil {
				return "", err
			}
			return catalog.Developer{ID: id}.URL(), nil
		},
	})
}

func (s *Server) developerUpdateForm(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	dev, err := s.developers.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Developer")
		return
	}
	form := developerFormData{Name: dev.Name, Description: dev.Description}
	s.renderDeveloperForm(c, "Update "+dev.Name+" info", "update", form, nil, "")
}

func (s *Server) developerUpdate(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	cand, errs := forms.ValidateDeveloper(forms.DeveloperForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	})
	s.runUpdate(c, errs, updateFlow{
		what:       "Developer",
		password:   c.PostForm("password"),
		authMsg:    "The password you entered is invalid",
		image:      s.formImage(c, "developer_image"),
		missingMsg: "Image is required to update a developer!",
		render: func(c *gin.Context, errs []forms.FieldError, flash string) {
			s.renderDeveloperForm(c, "Update "+cand.Name+" info", "update", developerFormData(cand), errs, flash)
		},
		update: func(ctx context.Context, imagePath string) (string, error) {
			err := s.developers.Update(ctx, id, catalog.Developer{
				Name:        cand.Name,
				Description: cand.Description,
				StudioImage: imagePath,
			})
			if err != nil {
				return "", err
			}
			return catalog.Developer{ID: id}.URL(), nil
		},
	})
}

func (s *Server) developerDeleteForm(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	dev, err := s.developers.Get(ctx, id)
	// A confirmation page for a record that is already gone has nothing
	// to confirm; send the visitor back to the list.
	if errors.Is(err, catalog.ErrNotFound) {
		c.Redirect(http.StatusFound, "/developers")
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	games, err := s.guard.BlockingGamesForDeveloper(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "developer_delete", gin.H{
		"Title":     "Delete " + dev.Name,
		"Developer": dev,
		"Games":     games,
	})
}

func (s *Server) developerDelete(c *gin.Context) {
	id, ok := s.objectID(c)
	if !ok {
		return
	}
	dev, err := s.developers.Get(c.Request.Context(), id)
	if err != nil {
		s.getFail(c, err, "Developer")
		return
	}
	s.runDelete(c, deleteFlow{
		what:     "Developer",
		password: c.PostForm("password"),
		blocked: func(ctx context.Context) (bool, error) {
			games, err := s.guard.BlockingGamesForDeveloper(ctx, id)
			if err != nil {
				return false, err
			}
			if len(games) == 0 {
				return false, nil
			}
			c.HTML(http.StatusOK, "developer_delete", gin.H{
				"Title":     "Delete " + dev.Name,
				"Developer": dev,
				"Games":     games,
			})
			return true, nil
		},
		render: func(c *gin.Context, authErr string) {
			c.HTML(http.StatusOK, "developer_delete", gin.H{
				"Title":     "Delete " + dev.Name,
				"Developer": dev,
				"Games":     []*catalog.Game{},
				"Error":     authErr,
			})
		},
		remove: func(ctx context.Context) error {
			return s.developers.Delete(ctx, id)
		},
		list: "/developers",
	})
}
