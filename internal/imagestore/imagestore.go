package imagestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"threads-backend/configs"
)

// Image is the result of an upload. ID is the store's own identifier and is
// persisted alongside the URL, so deletes never have to re-parse the URL.
type Image struct {
	URL string
	ID  string
}

type Store interface {
	// Upload accepts a base64 data URI ("data:image/png;base64,....")
	// and returns a durable URL plus the stored identifier.
	Upload(ctx context.Context, dataURI string) (Image, error)
	Destroy(ctx context.Context, id string) error
}

var extByMediaType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskStore writes uploads under Dir and serves them below BaseURL/uploads.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Upload(_ context.Context, dataURI string) (Image, error) {
	mediaType, payload, ok := strings.Cut(dataURI, ";base64,")
	if !ok {
		return Image{}, errors.New("image must be a base64 data URI")
	}
	mediaType = strings.TrimPrefix(mediaType, "data:")

	ext, ok := extByMediaType[mediaType]
	if !ok {
		return Image{}, fmt.Errorf("unsupported image type %q", mediaType)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	if len(raw) > configs.MaxImageBytes {
		return Image{}, fmt.Errorf("image exceeds %d bytes", configs.MaxImageBytes)
	}

	id := uuid.NewString()
	name := id + ext
	if err := os.WriteFile(filepath.Join(s.Dir, name), raw, 0o644); err != nil {
		return Image{}, fmt.Errorf("write image: %w", err)
	}

	return Image{
		URL: s.BaseURL + "/uploads/" + name,
		ID:  id,
	}, nil
}

func (s *DiskStore) Destroy(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	// id never carries an extension; match any stored variant.
	matches, err := filepath.Glob(filepath.Join(s.Dir, id+".*"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// DeriveID recovers the store identifier from an image URL for legacy posts
// persisted before the explicit img_id field existed: the final path segment
// with its extension stripped.
func DeriveID(url string) string {
	base := path.Base(url)
	return strings.TrimSuffix(base, path.Ext(base))
}
