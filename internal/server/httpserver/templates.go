package httpserver

import (
	"context"
	"html/template"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin/render"
)

var viewFuncs = template.FuncMap{
	// contains reports whether a select/checkbox value is part of the
	// submitted or stored selection.
	"contains": func(list []string, v string) bool {
		for _, s := range list {
			if s == v {
				return true
			}
		}
		return false
	},
}

// templateRender serves the current template set and lets the watcher
// swap in a re-parsed set while requests render concurrently. Installing
// it as the engine's HTMLRender avoids mutating a live gin engine, which
// holds no lock around its template pointer.
type templateRender struct {
	t atomic.Pointer[template.Template]
}

func (r *templateRender) Instance(name string, data any) render.Render {
	return render.HTML{Template: r.t.Load(), Name: name, Data: data}
}

// loadTemplates parses the template directory and publishes the set.
// In-flight requests keep rendering the set they already picked up.
func (s *Server) loadTemplates() error {
	t, err := template.New("").Funcs(viewFuncs).ParseGlob(filepath.Join(s.cfg.TemplatesDir, "*.html"))
	if err != nil {
		return err
	}
	s.render.t.Store(t)
	return nil
}

// watchTemplates re-parses the template directory on change so view edits
// show up without a restart. Parse errors keep the previous set.
func (s *Server) watchTemplates(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(s.cfg.TemplatesDir); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := s.loadTemplates(); err != nil {
					s.log.Warn("template reload failed", "file", ev.Name, "error", err)
					continue
				}
				s.log.Info("templates reloaded", "file", ev.Name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("template watcher error", "error", err)
			}
		}
	}()
	return nil
}
