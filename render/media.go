package render

// media.go: writing embedded images next to the rendered Markdown, and the
// data-URI form used by JSON output.

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// ErrUnsafeImageTarget is reported for image targets that would be written
// outside the export directory.
var ErrUnsafeImageTarget = errors.New("image target outside export directory")

// ExportImages writes every image of doc to dir joined with the image's
// target path, creating parent directories as needed. An empty dir means the
// working directory. Targets that are not local paths, such as "../x.png",
// are skipped with ErrUnsafeImageTarget. A failed write is logged and
// collected; the remaining images are still written.
func ExportImages(doc *document.Document, dir string, logger *slog.Logger) []error {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger.Error("resolve working directory", "error", err)
			return []error{fmt.Errorf("resolve working directory: %w", err)}
		}
		dir = wd
	}

	var errs []error
	for _, target := range sortedKeys(doc.Images) {
		if err := writeImage(dir, target, doc.Images[target]); err != nil {
			logger.Warn("image export failed", "target", target, "error", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// imagePath maps target below dir. A leading slash names the package root,
// not the filesystem root.
func imagePath(dir, target string) (string, error) {
	rel := filepath.FromSlash(strings.TrimLeft(target, "/"))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeImageTarget, target)
	}
	return filepath.Join(dir, rel), nil
}

func writeImage(dir, target string, data []byte) error {
	full, err := imagePath(dir, target)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write image %s: %w", target, err)
	}
	return nil
}

// mimeTypes maps lower-case image extensions to their MIME type.
var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
}

// MimeType infers an image MIME type from the extension of path.
func MimeType(path string) string {
	if m, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return "application/octet-stream"
}

// DataURI encodes data as a base64 data URI typed after path's extension.
func DataURI(path string, data []byte) string {
	return "data:" + MimeType(path) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
