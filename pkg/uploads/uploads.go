// Package uploads stores profile pictures and club logos on local disk and
// hands back the public URL they are served under.
package uploads

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Store writes uploads beneath a base directory and maps them to URLs under a
// public prefix.
type Store struct {
	baseDir   string
	publicURL string
}

func NewStore(baseDir, publicURL string) *Store {
	return &Store{baseDir: baseDir, publicURL: strings.TrimRight(publicURL, "/")}
}

// AllowedExtension reports whether the filename carries an accepted image extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save persists an uploaded image into a subfolder and returns its public URL.
// Any failure (bad extension, disk error) returns "" so the caller falls back
// to a default image; an upload never fails the surrounding request.
func (s *Store) Save(c *gin.Context, file *multipart.FileHeader, folder string) string {
	if file == nil || file.Filename == "" {
		return ""
	}
	if !AllowedExtension(file.Filename) {
		log.Warn().Str("filename", file.Filename).Msg("upload rejected: extension not allowed")
		return ""
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("upload dir creation failed")
		return ""
	}
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Error().Err(err).Str("dst", dst).Msg("upload save failed")
		return ""
	}
	return s.publicURL + "/" + folder + "/" + name
}
