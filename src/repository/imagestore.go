package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// ImageStore owns the directory of persisted uploads. Identifiers map
	// back to files by probing the allowed extensions in a fixed order;
	// the filesystem is the only index.
	ImageStore interface {
		GenerateID() string
		Save(id string, contents []byte, extension string) (string, error)
		Resolve(id string) (string, bool)
		Info(id string) (*ImageInfo, bool)
	}

	// ImageInfo is the stat-derived metadata for one stored image.
	ImageInfo struct {
		ImageID   string    `json:"image_id"`
		Filename  string    `json:"filename"`
		SizeBytes int64     `json:"size_bytes"`
		Extension string    `json:"extension"`
		CreatedAt time.Time `json:"created_at"`
	}

	LocalImageStore struct {
		dir string
		log *zap.Logger
	}
)

// probeExtensions is the canonical resolution order for an id.
var probeExtensions = []string{".jpg", ".jpeg", ".png"}

func NewLocalImageStore(dir string, log *zap.Logger) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create storage directory %s: %w", dir, err)
	}
	return &LocalImageStore{dir: dir, log: log}, nil
}

// GenerateID returns a short opaque identifier. A truncated random uuid
// gives statistical uniqueness, which is enough at this volume.
func (s *LocalImageStore) GenerateID() string {
	return uuid.NewString()[:12]
}

// Save writes the contents to {id}{extension} inside the storage
// directory, overwriting any exact-name match. Ids are fresh per upload,
// so last-writer-wins is acceptable.
func (s *LocalImageStore) Save(id string, contents []byte, extension string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("can not create storage directory %s: %w", s.dir, err)
	}

	filename := id + extension
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", fmt.Errorf("can not write image %s: %w", filename, err)
	}

	s.log.Info("image saved",
		zap.String("filename", filename),
		zap.Int("size_bytes", len(contents)))

	return path, nil
}

// Resolve probes the storage directory for {id}{ext} across the allowed
// extensions and returns the first match.
func (s *LocalImageStore) Resolve(id string) (string, bool) {
	for _, extension := range probeExtensions {
		path := filepath.Join(s.dir, id+extension)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Info resolves the id and stats the file for size and creation time.
func (s *LocalImageStore) Info(id string) (*ImageInfo, bool) {
	path, ok := s.Resolve(id)
	if !ok {
		return nil, false
	}

	stat, err := os.Stat(path)
	if err != nil {
		s.log.Warn("image vanished after resolution",
			zap.String("image_id", id), zap.Error(err))
		return nil, false
	}

	return &ImageInfo{
		ImageID:   id,
		Filename:  filepath.Base(path),
		SizeBytes: stat.Size(),
		Extension: filepath.Ext(path),
		CreatedAt: stat.ModTime(),
	}, true
}
