package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the upload ceiling for image fields.
const MaxImageSize = 2 << 20 // 2 MB

// Destination folders for uploaded assets, one per owning field.
const (
	FolderProjects     = "projects"
	FolderGallery      = "projects/gallery"
	FolderCompanies    = "companies"
	FolderTestimonials = "testimonials"
	FolderSettings     = "settings"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Manager stores uploaded files on local disk and hands back root-relative
// public URLs. Stored values are always URLs under URLPrefix, never
// filesystem paths.
type Manager struct {
	Root      string // filesystem root of the public storage area
	URLPrefix string // e.g. "/storage"
}

// NewManager creates an upload manager rooted at the given directory.
func NewManager(root, urlPrefix string) *Manager {
	return &Manager{
		Root:      root,
		URLPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// ValidateImage checks that the upload looks like an image and fits the size
// ceiling. Returns a human-readable message suitable for a field error.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return fmt.Errorf("file must not be larger than 2 MB")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExtensions[ext] {
		return fmt.Errorf("file must be an image")
	}
	return nil
}

// ValidateImageOrDocument accepts what ValidateImage accepts plus PDF, for
// file-backed settings like an uploaded resume.
func ValidateImageOrDocument(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == ".pdf" {
		if fh.Size > MaxImageSize {
			return fmt.Errorf("file must not be larger than 2 MB")
		}
		return nil
	}
	return ValidateImage(fh)
}

// StoreSingle persists one uploaded file under the given folder and returns
// its public URL. Generated names never collide, so an existing file is never
// overwritten in place.
func (m *Manager) StoreSingle(fh *multipart.FileHeader, folder string) (string, error) {
	dir := filepath.Join(m.Root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder %s: %w", folder, err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	return m.URLPrefix + "/" + path.Join(folder, name), nil
}

// StoreBatch persists every file in order and returns the resulting URLs in
// the same order. A mid-batch write failure removes the files already stored
// so no orphans are left behind.
func (m *Manager) StoreBatch(files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := m.StoreSingle(fh, folder)
		if err != nil {
			for _, stored := range urls {
				m.DeleteIfExists(stored)
			}
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteIfExists removes the file referenced by a public URL. Missing files
// and empty URLs are a no-op; a stale file is a harmless leak, so removal
// failures are logged rather than surfaced.
func (m *Manager) DeleteIfExists(url string) {
	p, ok := m.filePath(url)
	if !ok {
		return
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to delete stored file %s: %v", url, err)
	}
}

// Exists reports whether the file referenced by a public URL is on disk.
func (m *Manager) Exists(url string) bool {
	p, ok := m.filePath(url)
	if !ok {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}

// filePath resolves a stored public URL back to its path under Root. URLs
// outside the prefix (or escaping the root) resolve to nothing.
func (m *Manager) filePath(url string) (string, bool) {
	if url == "" || !strings.HasPrefix(url, m.URLPrefix+"/") {
		return "", false
	}
	rel := strings.TrimPrefix(url, m.URLPrefix+"/")
	clean := path.Clean(rel)
	if clean == "." || strings.HasPrefix(clean, "..") {
		return "", false
	}
	return filepath.Join(m.Root, filepath.FromSlash(clean)), true
}
