// Package uploads persists form-uploaded images under the public asset
// root and hands back the public path to store on the entity. Only the
// local file driver exists today; the Store surface is small enough that a
// bucket driver could replace it without touching callers.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrTooLarge is returned when the uploaded file exceeds Config.MaxBytes.
var ErrTooLarge = errors.New("uploads: file too large")

const defaultMaxBytes = 5 << 20 // 5 MiB

// Config controls where images land and what is accepted.
type Config struct {
	// BaseDir is the directory files are written to, e.g. public/uploads.
	BaseDir string
	// PublicPrefix is the URL prefix the stored path is built from.
	// Defaults to "/uploads".
	PublicPrefix string
	// MaxBytes caps the accepted file size. Defaults to 5 MiB.
	MaxBytes int64
}

// Store writes image files to local disk.
type Store struct {
	cfg Config
}

// New ensures the base directory exists.
func New(cfg Config) (*Store, error) {
	if cfg.BaseDir == "" {
		return nil, errors.New("uploads: base dir required")
	}
	if cfg.PublicPrefix == "" {
		cfg.PublicPrefix = "/uploads"
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure upload dir: %w", err)
	}
	return &Store{cfg: cfg}, nil
}

// Accepts reports whether the content type passes the image filter.
// Rejected types are treated by callers the same as "no file uploaded".
func (s *Store) Accepts(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

// Save streams the upload to disk and returns the public path, e.g.
// "/uploads/2026-08-28T10-11-12-3f2a...c1.png".
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.cfg.MaxBytes {
		return "", ErrTooLarge
	}
	name := objectName(fh.Filename)
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.cfg.BaseDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, io.LimitReader(src, s.cfg.MaxBytes+1)); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.cfg.PublicPrefix + "/" + name, nil
}

// objectName builds a collision-free key: timestamp + uuid + original
// extension. ':' never appears (Windows can't have it in file names).
func objectName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	// Drop anything suspicious in the extension; the bytes were already
	// MIME-filtered, the name just has to be a safe disk key.
	if len(ext) > 5 || strings.ContainsAny(ext, "/\\ ") {
		ext = ""
	}
	ts := time.Now().UTC().Format("2006-01-02T15-04-05")
	return ts + "-" + uuid.NewString() + ext
}
