package httpserver

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RustamYuburov/inventory-application/internal/auth"
	"github.com/RustamYuburov/inventory-application/internal/forms"
)

// The entity controllers share one mutation state machine with a fixed
// check order:
//
//	create: Validate -> ImageCheck -> duplicate short-circuit -> create
//	update: Validate -> Passphrase -> ImageCheck -> update
//	delete: ReferenceGuard -> Passphrase -> delete
//
// Handlers supply the entity-specific pieces as closures; the runners own
// the ordering. The game delete flow passes no guard: games have no
// dependents, and that asymmetry is kept on purpose.

type createFlow struct {
	image      *multipart.FileHeader
	missingMsg string
	// render re-renders the form with the sanitized candidate.
	render func(c *gin.Context, errs []forms.FieldError, flash string)
	// existing returns the redirect target of a same-name record, or ""
	// when none exists. nil disables the duplicate short-circuit.
	existing func(ctx context.Context) (string, error)
	create   func(ctx context.Context, imagePath string) (string, error)
}

func (s *Server) runCreate(c *gin.Context, errs []forms.FieldError, f createFlow) {
	if len(errs) > 0 {
		f.render(c, errs, "")
		return
	}
	if f.image == nil {
		f.render(c, nil, f.missingMsg)
		return
	}
	ctx := c.Request.Context()
	if f.existing != nil {
		url, err := f.existing(ctx)
		if err != nil {
			s.fail(c, err)
			return
		}
		if url != "" {
			c.Redirect(http.StatusFound, url)
			return
		}
	}
	path, err := s.images.Save(f.image)
	if err != nil {
		s.fail(c, err)
		return
	}
	url, err := f.create(ctx, path)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

type updateFlow struct {
	// what names the record kind for not-found rendering.
	what       string
	password   string
	authMsg    string
	image      *multipart.FileHeader
	missingMsg string
	render     func(c *gin.Context, errs []forms.FieldError, flash string)
	update     func(ctx context.Context, imagePath string) (string, error)
}

func (s *Server) runUpdate(c *gin.Context, errs []forms.FieldError, f updateFlow) {
	if len(errs) > 0 {
		f.render(c, errs, "")
		return
	}
	if !s.authz.Authorize(auth.ActionUpdate, f.password) {
		f.render(c, nil, f.authMsg)
		return
	}
	// Updates still require a fresh image; there is no keep-existing
	// path. TODO: let an update retain the stored image when no file is
	// submitted (needs product sign-off).
	if f.image == nil {
		f.render(c, nil, f.missingMsg)
		return
	}
	path, err := s.images.Save(f.image)
	if err != nil {
		s.fail(c, err)
		return
	}
	url, err := f.update(c.Request.Context(), path)
	if err != nil {
		// The record can vanish between the form GET and this POST.
		s.getFail(c, err, f.what)
		return
	}
	c.Redirect(http.StatusFound, url)
}

type deleteFlow struct {
	what     string
	password string
	// blocked loads the referencing games and renders the confirmation
	// page itself when at least one exists. It runs before the
	// passphrase check, so a blocked delete never leaks whether the
	// submitted passphrase was right. nil skips the guard.
	blocked func(ctx context.Context) (bool, error)
	render  func(c *gin.Context, authErr string)
	remove  func(ctx context.Context) error
	list    string
}

func (s *Server) runDelete(c *gin.Context, f deleteFlow) {
	ctx := c.Request.Context()
	if f.blocked != nil {
		stop, err := f.blocked(ctx)
		if err != nil {
			s.fail(c, err)
			return
		}
		if stop {
			return
		}
	}
	if !s.authz.Authorize(auth.ActionDelete, f.password) {
		f.render(c, "The password you entered is incorrect.")
		return
	}
	if err := f.remove(ctx); err != nil {
		s.getFail(c, err, f.what)
		return
	}
	c.Redirect(http.StatusFound, f.list)
}
