package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DiskStore writes uploaded files under a local directory. The rest of
// the system only holds the returned path string.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string { return s.dir }

// Save stores the upload as <millis>-<original name> and returns the
// relative path for persistence.
func (s *DiskStore) Save(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	dest := filepath.Join(s.dir, name)
	if err := c.SaveFile(fh, dest); err != nil {
		return "", err
	}
	return dest, nil
}
